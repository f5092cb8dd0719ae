// Package render combines wall columns and entity sprites into a Frame that
// any backend can draw.
package render

import (
	"image/color"
	"sort"

	"spellarena/internal/raycast"
	"spellarena/internal/threading/monitoring"
)

// Drawable is the read-only view of an entity the composer needs.
type Drawable interface {
	Position() (float64, float64)
	VisualSize() float64
	DisplayColor() color.RGBA
	IsAlive() bool
}

// bossDrawable marks drawables projected with boss proportions.
type bossDrawable interface {
	IsBoss() bool
}

// keyedDrawable names the sprite image a backend should use.
type keyedDrawable interface {
	SpriteKey() string
}

// Sprite is a projected, visible entity.
type Sprite struct {
	raycast.Projection
	Top        float64
	Key        string
	Color      color.RGBA
	Brightness float64
	Boss       bool
}

// Frame is everything a backend needs to draw one view.
type Frame struct {
	Width       float64
	Height      float64
	ColumnWidth float64
	ViewBob     float64 // vertical shift from the camera's z offset
	Columns     []raycast.Column
	Sprites     []Sprite // far to near
}

// Horizon is the screen row where ceiling meets floor.
func (f *Frame) Horizon() float64 {
	return f.Height/2 + f.ViewBob
}

// WallTop returns the top row of a column's wall slice.
func (f *Frame) WallTop(col raycast.Column) float64 {
	return (f.Height-col.Height)/2 + f.ViewBob
}

// Composer builds frames. It never modifies the drawables it is given.
type Composer struct {
	caster    *raycast.Caster
	bobFactor float64
	monitor   *monitoring.PerformanceMonitor
}

func NewComposer(caster *raycast.Caster, bobFactor float64) *Composer {
	return &Composer{caster: caster, bobFactor: bobFactor}
}

// SetMonitor records raycast timings on pm.
func (c *Composer) SetMonitor(pm *monitoring.PerformanceMonitor) {
	c.monitor = pm
}

// Compose casts the wall columns and projects every living, unoccluded
// drawable, sorted so the farthest is drawn first.
func (c *Composer) Compose(view raycast.View, drawables []Drawable) Frame {
	s := c.caster.Settings()
	frame := Frame{
		Width:       s.ScreenWidth,
		Height:      s.ScreenHeight,
		ColumnWidth: s.ScreenWidth / float64(s.NumRays),
		ViewBob:     float64(int(view.Z * c.bobFactor)),
	}

	if c.monitor != nil {
		c.monitor.ProfiledFunction("raycast", func() { frame.Columns = c.caster.CastColumns(view) })
	} else {
		frame.Columns = c.caster.CastColumns(view)
	}

	for _, d := range drawables {
		if !d.IsAlive() {
			continue
		}
		x, y := d.Position()
		boss := false
		if b, ok := d.(bossDrawable); ok {
			boss = b.IsBoss()
		}
		proj, visible := c.caster.Project(view, x, y, d.VisualSize(), boss)
		if !visible || c.caster.Occluded(view.X, view.Y, x, y) {
			continue
		}
		var key string
		if k, ok := d.(keyedDrawable); ok {
			key = k.SpriteKey()
		}
		frame.Sprites = append(frame.Sprites, Sprite{
			Projection: proj,
			Top:        (frame.Height-proj.Height)/2 + frame.ViewBob,
			Key:        key,
			Color:      d.DisplayColor(),
			Brightness: c.caster.Brightness(proj.Distance),
			Boss:       boss,
		})
	}

	sort.SliceStable(frame.Sprites, func(i, j int) bool {
		return frame.Sprites[i].Distance > frame.Sprites[j].Distance
	})
	return frame
}

// Shade scales a colour's RGB channels by brightness.
func Shade(c color.RGBA, brightness float64) color.RGBA {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
		A: c.A,
	}
}
