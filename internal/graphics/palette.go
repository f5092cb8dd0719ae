package graphics

import (
	"image/color"

	"spellarena/internal/config"
	"spellarena/internal/world"
)

// Palette holds the flat colours of the scene.
type Palette struct {
	Ceiling color.RGBA
	Floor   color.RGBA
	Wall    color.RGBA
	Pillar  color.RGBA
	Shop    color.RGBA
}

func NewPalette(cfg config.GraphicsConfig) Palette {
	return Palette{
		Ceiling: config.ColorByName(cfg.CeilingColor),
		Floor:   config.ColorByName(cfg.FloorColor),
		Wall:    config.ColorByName(cfg.WallColor),
		Pillar:  config.ColorByName(cfg.PillarColor),
		Shop:    config.ColorByName(cfg.ShopColor),
	}
}

// TileColor is the unshaded wall colour of a tile.
func (p Palette) TileColor(t world.Tile) color.RGBA {
	switch {
	case t == world.TilePillar:
		return p.Pillar
	case t.IsBuilding():
		return p.Shop
	default:
		return p.Wall
	}
}
