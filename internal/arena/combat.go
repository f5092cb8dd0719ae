package arena

import (
	"spellarena/internal/event"
	"spellarena/internal/monster"
	"spellarena/internal/spells"
)

// combatant is what a player spell can strike.
type combatant interface {
	monster.CombatEntity
	spells.Hittable
}

func (d *WaveDirector) targets() []combatant {
	out := make([]combatant, 0, len(d.enemies)+len(d.bosses))
	for _, e := range d.enemies {
		out = append(out, e)
	}
	for _, b := range d.bosses {
		out = append(out, b)
	}
	return out
}

// updateProjectiles advances player spells against enemies and bosses, then
// hostile projectiles against the player. Each projectile hits at most once.
func (d *WaveDirector) updateProjectiles(dt float64) {
	targets := d.targets()
	for _, p := range d.projectiles {
		p.Advance(dt, d.grid)
		if i := spells.FirstHit(p, targets); i >= 0 {
			targets[i].TakeDamage(p.Damage)
			p.Kill()
		}
	}
	d.projectiles = spells.Compact(d.projectiles)

	px, py := d.Player.Position()
	radius := d.cfg.Combat.HostileProjectileRadius
	resolve := func(list []*spells.Projectile) []*spells.Projectile {
		for _, p := range list {
			p.Advance(dt, d.grid)
			if p.IsAlive() && p.Within(px, py, radius) {
				d.Player.TakeDamage(p.Damage)
				p.Kill()
			}
		}
		return spells.Compact(list)
	}
	for _, e := range d.enemies {
		e.Projectiles = resolve(e.Projectiles)
	}
	for _, b := range d.bosses {
		b.Projectiles = resolve(b.Projectiles)
	}
}

// sweep removes dead entities, crediting each kill exactly once. A real boss
// takes its decoy down with it, and its in-flight projectiles vanish.
func (d *WaveDirector) sweep() {
	for _, b := range d.bosses {
		if !b.IsAlive() && b.IsReal && b.DecoyID != 0 {
			if decoy := d.bossByID(b.DecoyID); decoy != nil {
				decoy.Kill()
			}
		}
	}

	liveEnemies := d.enemies[:0]
	for _, e := range d.enemies {
		if e.IsAlive() {
			liveEnemies = append(liveEnemies, e)
			continue
		}
		d.credit(e.ID, e.Name, e.ScoreValue, false)
	}
	clearTail(d.enemies, len(liveEnemies))
	d.enemies = liveEnemies

	liveBosses := d.bosses[:0]
	for _, b := range d.bosses {
		if b.IsAlive() {
			liveBosses = append(liveBosses, b)
			continue
		}
		if b.IsReal && d.IsBossWave() {
			d.bossDefeated = true
		}
		d.credit(b.ID, b.Name, b.ScoreValue, true)
	}
	clearTail(d.bosses, len(liveBosses))
	d.bosses = liveBosses
}

func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}

func (d *WaveDirector) credit(id int, name string, score int, boss bool) {
	d.Player.AddScore(score)
	d.Player.AddGold(score)
	d.kills++
	if d.monitor != nil {
		d.monitor.AddKills(1)
	}
	d.dispatch(event.EntityKilled, KillInfo{ID: id, Name: name, Score: score, Boss: boss})
}

func (d *WaveDirector) bossByID(id int) *monster.Boss {
	for _, b := range d.bosses {
		if b.ID == id {
			return b
		}
	}
	return nil
}
