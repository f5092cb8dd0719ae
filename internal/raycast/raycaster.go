// Package raycast turns the tile grid into per-column wall slices and projects
// entities onto the screen.
package raycast

import (
	"math"

	"spellarena/internal/config"
	"spellarena/internal/mathutil"
	"spellarena/internal/threading/core"
	"spellarena/internal/world"
)

// Grid is the tile lookup the caster marches through. Out of range positions
// must report a non-empty tile.
type Grid interface {
	TileAt(wx, wy float64) world.Tile
}

// View is the camera: player position, facing and vertical offset.
type View struct {
	X, Y  float64
	Angle float64
	Z     float64
}

// Settings are the projection constants.
type Settings struct {
	FOV             float64
	StepSize        float64
	MaxDepth        float64 // world units
	NumRays         int
	ScreenWidth     float64
	ScreenHeight    float64
	WallHeightScale float64
	BrightnessMin   float64

	SpriteScale       float64
	BossSpriteScale   float64
	MinSpriteSize     float64
	MinBossSpriteSize float64
	BossHeightFactor  float64
}

// SettingsFromConfig reads the camera and graphics sections.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		FOV:               cfg.GetCameraFOV(),
		StepSize:          cfg.Camera.StepSize,
		MaxDepth:          cfg.GetViewDistance(),
		NumRays:           cfg.GetNumRays(),
		ScreenWidth:       float64(cfg.GetScreenWidth()),
		ScreenHeight:      float64(cfg.GetScreenHeight()),
		WallHeightScale:   cfg.Graphics.WallHeightScale,
		BrightnessMin:     cfg.Graphics.BrightnessMin,
		SpriteScale:       cfg.Graphics.SpriteScale,
		BossSpriteScale:   cfg.Graphics.BossSpriteScale,
		MinSpriteSize:     cfg.Graphics.MinSpriteSize,
		MinBossSpriteSize: cfg.Graphics.MinBossSpriteSize,
		BossHeightFactor:  cfg.Graphics.BossHeightFactor,
	}
}

// RayHit is the result of marching a single ray.
type RayHit struct {
	RawDepth float64
	HitX     float64
	HitY     float64
	Tile     world.Tile
	Hit      bool // false when the ray reached MaxDepth in open space
}

// Column is one screen column of wall.
type Column struct {
	Index      int
	RayAngle   float64
	RawDepth   float64
	Depth      float64 // fisheye corrected
	HitX       float64
	HitY       float64
	Tile       world.Tile
	Hit        bool
	Height     float64
	Brightness float64
}

// Caster casts rays through an immutable grid. It holds no per-frame state,
// so concurrent calls are safe.
type Caster struct {
	grid     Grid
	settings Settings
	pool     *core.WorkerPool
}

// NewCaster creates a caster. A nil pool casts columns sequentially.
func NewCaster(grid Grid, settings Settings, pool *core.WorkerPool) *Caster {
	if settings.StepSize <= 0 {
		settings.StepSize = 4
	}
	if settings.NumRays <= 0 {
		settings.NumRays = mathutil.IntMax(1, int(settings.ScreenWidth)/2)
	}
	return &Caster{grid: grid, settings: settings, pool: pool}
}

func (c *Caster) Settings() Settings {
	return c.settings
}

func (c *Caster) blocked(wx, wy float64) bool {
	return c.grid.TileAt(wx, wy) != world.TileEmpty
}

// RayAngle returns the angle of column i, sweeping the field of view left to right.
func (c *Caster) RayAngle(view View, i int) float64 {
	return view.Angle - c.settings.FOV/2 + c.settings.FOV*float64(i)/float64(c.settings.NumRays)
}

// CastRay marches from (x, y) along angle in fixed steps until it meets a
// non-empty or out of range tile.
func (c *Caster) CastRay(x, y, angle float64) RayHit {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	step := c.settings.StepSize

	for depth := step; depth <= c.settings.MaxDepth; depth += step {
		px := x + cosA*depth
		py := y + sinA*depth
		if tile := c.grid.TileAt(px, py); tile != world.TileEmpty {
			return RayHit{RawDepth: depth, HitX: px, HitY: py, Tile: tile, Hit: true}
		}
	}

	return RayHit{
		RawDepth: c.settings.MaxDepth,
		HitX:     x + cosA*c.settings.MaxDepth,
		HitY:     y + sinA*c.settings.MaxDepth,
		Tile:     world.TileEmpty,
	}
}

// CastColumn casts the ray for screen column i and derives its slice.
func (c *Caster) CastColumn(view View, i int) Column {
	angle := c.RayAngle(view, i)
	hit := c.CastRay(view.X, view.Y, angle)
	depth := hit.RawDepth * math.Cos(view.Angle-angle)

	return Column{
		Index:      i,
		RayAngle:   angle,
		RawDepth:   hit.RawDepth,
		Depth:      depth,
		HitX:       hit.HitX,
		HitY:       hit.HitY,
		Tile:       hit.Tile,
		Hit:        hit.Hit,
		Height:     c.WallHeight(depth),
		Brightness: c.Brightness(depth),
	}
}

// CastColumns casts every column. With a worker pool the columns are split
// across workers; each writes only its own slot.
func (c *Caster) CastColumns(view View) []Column {
	columns := make([]Column, c.settings.NumRays)
	cast := func(i int) {
		columns[i] = c.CastColumn(view, i)
	}

	if c.pool != nil {
		c.pool.ParallelFor(0, len(columns), cast)
	} else {
		for i := range columns {
			cast(i)
		}
	}
	return columns
}

// WallHeight is inversely proportional to depth and never exceeds the screen.
func (c *Caster) WallHeight(depth float64) float64 {
	h := c.settings.WallHeightScale / mathutil.SafeDenominator(depth)
	return math.Min(h, c.settings.ScreenHeight)
}

// Brightness falls off linearly with depth down to BrightnessMin.
func (c *Caster) Brightness(depth float64) float64 {
	if c.settings.MaxDepth <= 0 {
		return 1
	}
	b := 1 - depth/c.settings.MaxDepth
	return mathutil.Clamp(b, c.settings.BrightnessMin, 1)
}
