package raycast

import (
	"math"

	"spellarena/internal/mathutil"
)

// Projection places an entity on screen.
type Projection struct {
	ScreenX   float64 // centre column in pixels
	Distance  float64 // straight-line distance to the viewer
	AngleDiff float64 // signed offset from the view direction, (−π, π]
	Width     float64
	Height    float64
}

// Project maps a world position to screen space. It reports false when the
// entity lies outside the field of view. Size uses the Euclidean distance,
// not the fisheye corrected depth.
func (c *Caster) Project(view View, x, y, size float64, boss bool) (Projection, bool) {
	dx := x - view.X
	dy := y - view.Y
	dist := math.Hypot(dx, dy)

	diff := mathutil.AngleDiff(math.Atan2(dy, dx), view.Angle)
	halfFOV := c.settings.FOV / 2
	if math.Abs(diff) > halfFOV {
		return Projection{}, false
	}

	halfWidth := c.settings.ScreenWidth / 2
	p := Projection{
		ScreenX:   diff/halfFOV*halfWidth + halfWidth,
		Distance:  dist,
		AngleDiff: diff,
	}

	d := mathutil.SafeDenominator(dist)
	if boss {
		s := math.Max(c.settings.MinBossSpriteSize, size*c.settings.BossSpriteScale/d)
		p.Width = s
		p.Height = s * c.settings.BossHeightFactor
	} else {
		s := math.Max(c.settings.MinSpriteSize, size*c.settings.SpriteScale/d)
		p.Width = s
		p.Height = s
	}
	return p, true
}

// Occluded samples max(10, d/8) points strictly between the two positions.
// Any sample on a non-empty or out of range tile blocks the view.
func (c *Caster) Occluded(fromX, fromY, toX, toY float64) bool {
	dist := math.Hypot(toX-fromX, toY-fromY)
	samples := mathutil.IntMax(10, int(dist/8))

	for i := 1; i < samples; i++ {
		t := float64(i) / float64(samples)
		if c.blocked(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t) {
			return true
		}
	}
	return false
}
