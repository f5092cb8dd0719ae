package monster

import (
	"math"
	"math/rand"
	"time"

	"spellarena/internal/mathutil"
	"spellarena/internal/spells"
)

// Target is the entity hostiles chase and hit.
type Target interface {
	Position() (float64, float64)
	TakeDamage(amount float64) float64
	IsAlive() bool
}

// Terrain answers walkability in world coordinates.
type Terrain interface {
	IsWalkableAt(wx, wy float64) bool
	WorldBounds() (float64, float64)
}

// Tick carries everything an entity needs for one simulation step.
type Tick struct {
	Now     time.Time
	DT      float64 // seconds
	Target  Target
	Terrain Terrain
	RNG     *rand.Rand
}

// CombatEntity is the update/damage capability shared by enemies and bosses.
type CombatEntity interface {
	Update(t *Tick)
	TakeDamage(amount float64) bool
	IsAlive() bool
}

var (
	_ CombatEntity = (*Enemy)(nil)
	_ CombatEntity = (*Boss)(nil)
)

// Update runs one step of the seek / attack / flee machine.
func (e *Enemy) Update(t *Tick) {
	if !e.alive {
		return
	}
	e.engage(t)
}

func (e *Enemy) engage(t *Tick) {
	tx, ty := t.Target.Position()
	dx, dy := tx-e.X, ty-e.Y
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		e.Angle = mathutil.NormalizeAngle(math.Atan2(dy, dx))
	}

	switch {
	case dist > e.AttackRange:
		e.State = StateSeeking
		e.step(t, dx, dy, dist, e.Speed)
	case e.Ranged && dist < e.combat.FleeDistance:
		e.State = StateFleeing
		e.step(t, -dx, -dy, dist, e.Speed*e.combat.FleeSpeedFactor)
	default:
		e.State = StateAttacking
	}

	if dist <= e.AttackRange && t.Target.IsAlive() && e.attackReady(t.Now) {
		e.attack(t.Target, dx, dy, t.Now)
	}
}

// step moves along (dx, dy) / dist, rejecting destinations on blocked tiles.
func (e *Enemy) step(t *Tick, dx, dy, dist, speed float64) {
	if dist <= 0 {
		return
	}
	nx := e.X + dx/dist*speed*t.DT
	ny := e.Y + dy/dist*speed*t.DT
	if t.Terrain.IsWalkableAt(nx, ny) {
		e.X, e.Y = nx, ny
	}
}

func (e *Enemy) attackReady(now time.Time) bool {
	return e.lastAttack.IsZero() || now.Sub(e.lastAttack) >= e.cooldown
}

func (e *Enemy) attack(target Target, dx, dy float64, now time.Time) {
	if e.Ranged {
		volley := spells.NewHostileProjectiles(e.combat, e.X, e.Y, math.Atan2(dy, dx), e.Damage, e.volley, e.spread)
		e.Projectiles = append(e.Projectiles, volley...)
	} else {
		target.TakeDamage(e.Damage)
	}
	e.lastAttack = now
}
