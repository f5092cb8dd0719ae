package spells

import (
	"image/color"
	"math"
)

// Terrain answers walkability in world coordinates.
type Terrain interface {
	IsWalkableAt(wx, wy float64) bool
}

// Hittable is anything a projectile can strike.
type Hittable interface {
	Position() (float64, float64)
	VisualSize() float64
	IsAlive() bool
}

// Projectile travels in a straight line until it touches a wall or a target.
type Projectile struct {
	X, Y    float64
	Angle   float64
	Speed   float64
	Damage  float64
	Size    float64
	Color   color.RGBA
	Spell   SpellType // empty for hostile projectiles
	Hostile bool

	alive bool
}

// NewProjectile launches a projectile from (x, y) along angle.
func NewProjectile(x, y, angle, speed, damage, size float64, c color.RGBA) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Angle:  angle,
		Speed:  speed,
		Damage: damage,
		Size:   size,
		Color:  c,
		alive:  true,
	}
}

// Advance moves the projectile and kills it on wall contact.
func (p *Projectile) Advance(dt float64, terrain Terrain) {
	if !p.alive {
		return
	}
	p.X += math.Cos(p.Angle) * p.Speed * dt
	p.Y += math.Sin(p.Angle) * p.Speed * dt
	if !terrain.IsWalkableAt(p.X, p.Y) {
		p.alive = false
	}
}

// Within reports whether the projectile centre is closer than radius to (x, y).
func (p *Projectile) Within(x, y, radius float64) bool {
	return math.Hypot(p.X-x, p.Y-y) < radius
}

// FirstHit returns the index of the first living target whose radius, combined
// with the projectile size, contains the projectile. It returns -1 on a miss.
func FirstHit[T Hittable](p *Projectile, targets []T) int {
	if !p.alive {
		return -1
	}
	for i, t := range targets {
		if !t.IsAlive() {
			continue
		}
		tx, ty := t.Position()
		if p.Within(tx, ty, t.VisualSize()+p.Size) {
			return i
		}
	}
	return -1
}

func (p *Projectile) Kill() {
	p.alive = false
}

func (p *Projectile) IsAlive() bool {
	return p.alive
}

func (p *Projectile) Position() (float64, float64) {
	return p.X, p.Y
}

func (p *Projectile) VisualSize() float64 {
	return p.Size
}

func (p *Projectile) DisplayColor() color.RGBA {
	return p.Color
}

// SpriteKey is the spell kind, or "bolt" for hostile projectiles.
func (p *Projectile) SpriteKey() string {
	if p.Spell == "" {
		return "bolt"
	}
	return string(p.Spell)
}

// Compact drops dead projectiles in place and returns the shortened slice.
func Compact(projectiles []*Projectile) []*Projectile {
	live := projectiles[:0]
	for _, p := range projectiles {
		if p.alive {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(projectiles); i++ {
		projectiles[i] = nil
	}
	return live
}
