package monster

import (
	"image/color"
	"math"
	"time"

	"spellarena/internal/character"
	"spellarena/internal/config"
	"spellarena/internal/spells"
)

// Enemy is a regular wave enemy. Bosses embed it for movement and attacks.
type Enemy struct {
	character.Transform
	ID          int
	Kind        EnemyKind
	Name        string
	Health      float64
	MaxHealth   float64
	Speed       float64
	Damage      float64
	Size        float64
	AttackRange float64
	ScoreValue  int
	Ranged      bool
	State       AIState

	// Hostile projectiles fired by this entity. The arena advances them.
	Projectiles []*spells.Projectile

	color      color.RGBA
	alive      bool
	lastAttack time.Time
	cooldown   time.Duration
	combat     config.CombatConfig
	volley     int
	spread     float64
}

func enemyStats(cfg *config.Config, kind EnemyKind) *config.EnemyConfig {
	if ec, ok := cfg.Enemies[string(kind)]; ok && ec != nil {
		return ec
	}
	return &config.EnemyConfig{Name: string(kind), Health: 1, Size: 10, AttackRange: 45, Color: "white"}
}

// NewEnemy creates an enemy of the given kind with health and damage scaled
// by the wave multipliers.
func NewEnemy(id int, kind EnemyKind, cfg *config.Config, x, y, healthMul, damageMul float64) *Enemy {
	ec := enemyStats(cfg, kind)
	health := ec.Health * healthMul
	return &Enemy{
		Transform:   character.Transform{X: x, Y: y},
		ID:          id,
		Kind:        kind,
		Name:        ec.Name,
		Health:      health,
		MaxHealth:   health,
		Speed:       ec.Speed,
		Damage:      ec.Damage * damageMul,
		Size:        ec.Size,
		AttackRange: ec.AttackRange,
		ScoreValue:  ec.Score,
		Ranged:      ec.Ranged,
		color:       config.ColorByName(ec.Color),
		alive:       true,
		cooldown:    config.Millis(cfg.Combat.EnemyAttackCooldownMs),
		combat:      cfg.Combat,
		volley:      1,
	}
}

// TakeDamage subtracts health. It returns true only for the hit that kills.
func (e *Enemy) TakeDamage(amount float64) bool {
	if !e.alive || amount <= 0 {
		return false
	}
	e.Health = math.Max(0, e.Health-amount)
	if e.Health == 0 {
		e.alive = false
		return true
	}
	return false
}

// Kill removes the enemy without a damage roll. It reports whether it was alive.
func (e *Enemy) Kill() bool {
	if !e.alive {
		return false
	}
	e.Health = 0
	e.alive = false
	return true
}

func (e *Enemy) IsAlive() bool {
	return e.alive
}

func (e *Enemy) IsBoss() bool {
	return false
}

// SpriteKey names the sprite image for this kind.
func (e *Enemy) SpriteKey() string {
	return string(e.Kind)
}

func (e *Enemy) VisualSize() float64 {
	return e.Size
}

func (e *Enemy) DisplayColor() color.RGBA {
	return e.color
}

// HealthFraction is health over max health, for health bars.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
