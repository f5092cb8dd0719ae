package world

import (
	"fmt"
	"math"

	"spellarena/internal/config"
)

// Grid is an immutable tile map. Lookups outside the map resolve to TileWall.
type Grid struct {
	width    int
	height   int
	tileSize float64
	tiles    []Tile
}

func newFilledGrid(width, height int, tileSize float64, fill Tile) *Grid {
	g := &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]Tile, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = fill
	}
	return g
}

// NewGridFromRows copies integer map rows into a grid. Rows must be rectangular.
func NewGridFromRows(rows [][]int, tileSize float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("map contains no tiles")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %f", tileSize)
	}

	width := len(rows[0])
	g := newFilledGrid(width, len(rows), tileSize, TileWall)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has inconsistent width: expected %d, got %d", y+1, width, len(row))
		}
		for x, code := range row {
			g.tiles[y*width+x] = TileFromCode(code)
		}
	}
	return g, nil
}

// NewArenaGrid builds the circular arena: fully walled, a carved disc around
// the centre and optional pillars at the configured offsets.
func NewArenaGrid(cfg *config.Config) *Grid {
	g := newFilledGrid(cfg.World.MapWidth, cfg.World.MapHeight, cfg.GetTileSize(), TileWall)
	cx, cy := cfg.Arena.CenterX, cfg.Arena.CenterY

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			if dist < cfg.Arena.Radius {
				g.tiles[y*g.width+x] = TileEmpty
			}
		}
	}

	if cfg.Arena.Pillars {
		for _, off := range cfg.Arena.PillarOffsets {
			px, py := cx+off[0], cy+off[1]
			if g.inBounds(px, py) {
				g.tiles[py*g.width+px] = TilePillar
			}
		}
	}
	return g
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Tile returns the tile at grid coordinates.
func (g *Grid) Tile(x, y int) Tile {
	if !g.inBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.width+x]
}

// IsWalkable is true only for empty tiles.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.Tile(x, y) == TileEmpty
}

// WorldToTile converts world units to tile coordinates.
func (g *Grid) WorldToTile(wx, wy float64) (int, int) {
	return int(math.Floor(wx / g.tileSize)), int(math.Floor(wy / g.tileSize))
}

// TileAt returns the tile under a world position.
func (g *Grid) TileAt(wx, wy float64) Tile {
	tx, ty := g.WorldToTile(wx, wy)
	return g.Tile(tx, ty)
}

// IsWalkableAt reports whether the world position lies on an empty tile.
func (g *Grid) IsWalkableAt(wx, wy float64) bool {
	return g.TileAt(wx, wy) == TileEmpty
}

// TileCenter returns the world position of a tile's centre.
func (g *Grid) TileCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * g.tileSize, (float64(y) + 0.5) * g.tileSize
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// WorldBounds returns the map extent in world units.
func (g *Grid) WorldBounds() (float64, float64) {
	return float64(g.width) * g.tileSize, float64(g.height) * g.tileSize
}

// BuildingAt returns the building tile under a world position, if any.
func (g *Grid) BuildingAt(wx, wy float64) (Tile, bool) {
	t := g.TileAt(wx, wy)
	return t, t.IsBuilding()
}

// NearestWalkable scans square rings outward from (tx, ty) and returns the
// first walkable tile.
func (g *Grid) NearestWalkable(tx, ty int) (int, int, bool) {
	maxRing := g.width
	if g.height > maxRing {
		maxRing = g.height
	}
	for r := 0; r <= maxRing; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx != -r && dx != r && dy != -r && dy != r {
					continue
				}
				if g.IsWalkable(tx+dx, ty+dy) {
					return tx + dx, ty + dy, true
				}
			}
		}
	}
	return 0, 0, false
}
