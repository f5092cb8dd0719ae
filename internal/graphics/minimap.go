package graphics

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spellarena/internal/render"
	"spellarena/internal/world"
)

// MinimapGrid is the tile lookup the minimap draws from.
type MinimapGrid interface {
	Width() int
	Height() int
	TileSize() float64
	Tile(x, y int) world.Tile
}

// Minimap is a top-down overview in a screen corner.
type Minimap struct {
	X, Y  float32
	Scale float32 // pixels per tile
}

var (
	minimapBackground = color.RGBA{40, 40, 40, 220}
	minimapPlayer     = color.RGBA{0, 200, 255, 255}
)

// Draw paints the grid, every living drawable and the player's heading.
func (m Minimap) Draw(screen *ebiten.Image, grid MinimapGrid, palette Palette, px, py, angle float64, drawables []render.Drawable) {
	w := float32(grid.Width()) * m.Scale
	h := float32(grid.Height()) * m.Scale
	vector.DrawFilledRect(screen, m.X, m.Y, w, h, minimapBackground, false)

	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			t := grid.Tile(tx, ty)
			if t == world.TileEmpty {
				continue
			}
			vector.DrawFilledRect(screen, m.X+float32(tx)*m.Scale, m.Y+float32(ty)*m.Scale, m.Scale, m.Scale, palette.TileColor(t), false)
		}
	}
	vector.StrokeRect(screen, m.X, m.Y, w, h, 1, color.White, false)

	ts := grid.TileSize()
	for _, d := range drawables {
		if !d.IsAlive() {
			continue
		}
		wx, wy := d.Position()
		x, y := m.point(ts, wx, wy)
		vector.DrawFilledCircle(screen, x, y, 2, d.DisplayColor(), false)
	}

	cx, cy := m.point(ts, px, py)
	vector.DrawFilledCircle(screen, cx, cy, 3, minimapPlayer, false)
	vector.StrokeLine(screen, cx, cy, cx+float32(math.Cos(angle))*8, cy+float32(math.Sin(angle))*8, 1, minimapPlayer, false)
}

// point maps a world position to minimap pixels.
func (m Minimap) point(tileSize, x, y float64) (float32, float32) {
	return m.X + float32(x/tileSize)*m.Scale, m.Y + float32(y/tileSize)*m.Scale
}
