package spells

import (
	"spellarena/internal/config"
	"spellarena/internal/mathutil"
)

// Caster is the side of the player the casting system needs.
type Caster interface {
	Position() (float64, float64)
	Facing() float64
	KnowsSpell(key string) bool
	SpendMana(amount float64) bool
	DamageMultiplier() float64
	Heal(amount float64)
}

// CastResult describes a successful cast. Projectile is nil for instant spells.
type CastResult struct {
	Spell      SpellType
	Projectile *Projectile
	Healed     float64
}

// CastingSystem validates casts and produces projectiles or instant effects.
type CastingSystem struct {
	book *SpellBook
}

// NewCastingSystem creates a new spell casting system
func NewCastingSystem(cfg *config.Config) *CastingSystem {
	return &CastingSystem{book: NewSpellBook(cfg)}
}

func (cs *CastingSystem) Book() *SpellBook {
	return cs.book
}

// Cast spends mana and resolves the spell. It fails without side effects when
// the spell is unknown to the book or the caster, or mana is short.
func (cs *CastingSystem) Cast(spell SpellType, caster Caster) (CastResult, bool) {
	def, ok := cs.book.Get(spell)
	if !ok || !caster.KnowsSpell(string(spell)) {
		return CastResult{}, false
	}
	if !caster.SpendMana(def.Cost) {
		return CastResult{}, false
	}

	mult := caster.DamageMultiplier()
	if def.Instant {
		amount := def.Heal * mult
		caster.Heal(amount)
		return CastResult{Spell: spell, Healed: amount}, true
	}

	x, y := caster.Position()
	p := NewProjectile(x, y, caster.Facing(), def.Speed, def.Damage*mult, def.Size, def.Color)
	p.Spell = spell
	return CastResult{Spell: spell, Projectile: p}, true
}

// NewHostileProjectiles builds a fan of count projectiles centred on angle,
// spaced spread radians apart.
func NewHostileProjectiles(combat config.CombatConfig, x, y, angle, damage float64, count int, spread float64) []*Projectile {
	if count <= 0 {
		count = 1
	}
	c := config.ColorByName(combat.HostileProjectileColor)
	out := make([]*Projectile, 0, count)
	mid := float64(count-1) / 2
	for i := 0; i < count; i++ {
		a := mathutil.NormalizeAngle(angle + (float64(i)-mid)*spread)
		p := NewProjectile(x, y, a, combat.HostileProjectileSpeed, damage, combat.HostileProjectileSize, c)
		p.Hostile = true
		out = append(out, p)
	}
	return out
}
