// Package graphics draws composed frames with ebiten.
package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spellarena/internal/render"
)

// FrameDrawer paints a render.Frame: ceiling and floor, wall columns, then
// sprites far to near.
type FrameDrawer struct {
	palette Palette
	sprites *SpriteManager
}

func NewFrameDrawer(palette Palette, sprites *SpriteManager) *FrameDrawer {
	return &FrameDrawer{palette: palette, sprites: sprites}
}

func (fd *FrameDrawer) Draw(screen *ebiten.Image, f *render.Frame) {
	horizon := float32(f.Horizon())
	w, h := float32(f.Width), float32(f.Height)
	vector.DrawFilledRect(screen, 0, 0, w, horizon, fd.palette.Ceiling, false)
	vector.DrawFilledRect(screen, 0, horizon, w, h-horizon, fd.palette.Floor, false)

	colW := float32(f.ColumnWidth)
	for _, col := range f.Columns {
		if !col.Hit {
			continue
		}
		c := render.Shade(fd.palette.TileColor(col.Tile), col.Brightness)
		// +1 closes the seams between columns
		vector.DrawFilledRect(screen, float32(col.Index)*colW, float32(f.WallTop(col)), colW+1, float32(col.Height), c, false)
	}

	for _, sp := range f.Sprites {
		fd.drawSprite(screen, sp)
	}
}

func (fd *FrameDrawer) drawSprite(screen *ebiten.Image, sp render.Sprite) {
	img, placeholder := fd.sprites.GetSprite(sp.Key)
	b := img.Bounds()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(sp.Width/float64(b.Dx()), sp.Height/float64(b.Dy()))
	opts.GeoM.Translate(sp.ScreenX-sp.Width/2, sp.Top)
	if placeholder {
		opts.ColorScale.ScaleWithColor(render.Shade(sp.Color, sp.Brightness))
	} else {
		br := float32(sp.Brightness)
		opts.ColorScale.Scale(br, br, br, 1)
	}
	screen.DrawImage(img, opts)
}
