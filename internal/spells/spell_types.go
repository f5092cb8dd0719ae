package spells

import (
	"image/color"
	"sort"

	"spellarena/internal/config"
)

// SpellType is the config key of a spell.
type SpellType string

const (
	SpellTypeFireball  SpellType = "fireball"
	SpellTypeLightning SpellType = "lightning"
	SpellTypeIce       SpellType = "ice"
	SpellTypeHeal      SpellType = "heal"
)

// SpellDefinition is the fixed data of one spell kind.
type SpellDefinition struct {
	Type    SpellType
	Name    string
	Cost    float64
	Speed   float64
	Damage  float64
	Size    float64
	Heal    float64
	Instant bool
	Color   color.RGBA
}

// IsProjectile reports whether casting launches a projectile.
func (d SpellDefinition) IsProjectile() bool {
	return !d.Instant
}

// SpellBook holds every configured spell definition.
type SpellBook struct {
	defs map[SpellType]SpellDefinition
}

// NewSpellBook builds definitions from the spells section of the config.
func NewSpellBook(cfg *config.Config) *SpellBook {
	book := &SpellBook{defs: make(map[SpellType]SpellDefinition, len(cfg.Spells))}
	for key, sc := range cfg.Spells {
		if sc == nil {
			continue
		}
		book.defs[SpellType(key)] = SpellDefinition{
			Type:    SpellType(key),
			Name:    sc.Name,
			Cost:    sc.Cost,
			Speed:   sc.Speed,
			Damage:  sc.Damage,
			Size:    sc.Size,
			Heal:    sc.Heal,
			Instant: sc.Instant,
			Color:   config.ColorByName(sc.Color),
		}
	}
	return book
}

// Get returns the definition for a spell type.
func (b *SpellBook) Get(spell SpellType) (SpellDefinition, bool) {
	def, ok := b.defs[spell]
	return def, ok
}

// Types lists every known spell type in a stable order.
func (b *SpellBook) Types() []SpellType {
	types := make([]SpellType, 0, len(b.defs))
	for t := range b.defs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
