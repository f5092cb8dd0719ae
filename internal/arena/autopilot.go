package arena

import (
	"math"
	"strings"

	"spellarena/internal/character"
	"spellarena/internal/mathutil"
	"spellarena/internal/spells"
)

const (
	autopilotAimTolerance  = 0.06
	autopilotCastTolerance = 0.12
	autopilotStandoff      = 120.0
	autopilotEngage        = 260.0
	autopilotHealFraction  = 0.4
)

// Autopilot plays the arena without a human: it faces the nearest target,
// casts when lined up, keeps its distance and shops on every prompt. The sim
// command uses it.
type Autopilot struct {
	director *WaveDirector
	shop     *Shop
}

func NewAutopilot(d *WaveDirector, shop *Shop) *Autopilot {
	return &Autopilot{director: d, shop: shop}
}

// Step runs one frame.
func (a *Autopilot) Step() {
	d := a.director
	if d.Phase() == PhaseShopPrompt {
		a.spendGold()
		d.ContinueFromShop()
		return
	}
	d.Update(a.Input())
}

// Input computes this frame's controls.
func (a *Autopilot) Input() character.Input {
	p := a.director.Player
	var in character.Input

	tx, ty, dist, ok := a.nearestTarget()
	if !ok {
		return in
	}

	diff := mathutil.AngleDiff(math.Atan2(ty-p.Y, tx-p.X), p.Angle)
	switch {
	case diff > autopilotAimTolerance:
		in.TurnRight = true
	case diff < -autopilotAimTolerance:
		in.TurnLeft = true
	}

	switch {
	case dist < autopilotStandoff:
		in.Backward = true
	case dist > autopilotEngage:
		in.Forward = true
	}

	if p.Health < p.MaxHealth()*autopilotHealFraction && p.KnowsSpell(string(spells.SpellTypeHeal)) {
		in.SelectSpell = string(spells.SpellTypeHeal)
		in.Cast = true
		return in
	}
	in.SelectSpell = a.attackSpell()
	in.Cast = math.Abs(diff) < autopilotCastTolerance
	return in
}

// attackSpell prefers the hardest hitting projectile spell the player knows.
func (a *Autopilot) attackSpell() string {
	book := a.director.Casting().Book()
	best, bestDamage := "", -1.0
	for _, key := range a.director.Player.KnownSpells() {
		def, ok := book.Get(spells.SpellType(key))
		if !ok || !def.IsProjectile() {
			continue
		}
		if def.Damage > bestDamage {
			best, bestDamage = key, def.Damage
		}
	}
	return best
}

func (a *Autopilot) nearestTarget() (x, y, dist float64, ok bool) {
	px, py := a.director.Player.Position()
	dist = math.Inf(1)
	for _, t := range a.director.targets() {
		if !t.IsAlive() {
			continue
		}
		tx, ty := t.Position()
		if d := math.Hypot(tx-px, ty-py); d < dist {
			x, y, dist, ok = tx, ty, d, true
		}
	}
	return x, y, dist, ok
}

// spendGold buys robes, armor and spells in that order while gold lasts.
func (a *Autopilot) spendGold() {
	p := a.director.Player
	for {
		bought := false
		for _, offer := range a.shop.Offers(p) {
			if !offer.Affordable || strings.HasPrefix(offer.Key, "potion:") {
				continue
			}
			if err := a.shop.Buy(p, offer.Key); err == nil {
				bought = true
				break
			}
		}
		if !bought {
			return
		}
	}
}
