package world

import (
	"math"
	"testing"

	"spellarena/internal/config"
)

func arenaConfig(pillars bool) *config.Config {
	cfg := config.Default()
	cfg.Arena.Pillars = pillars
	return cfg
}

func TestArenaGrid_CarvedDisc(t *testing.T) {
	cfg := arenaConfig(false)
	g := NewArenaGrid(cfg)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			dist := math.Hypot(float64(x-cfg.Arena.CenterX), float64(y-cfg.Arena.CenterY))
			if dist < cfg.Arena.Radius && !g.IsWalkable(x, y) {
				t.Errorf("tile (%d,%d) at distance %.2f should be walkable", x, y, dist)
			}
			if dist >= cfg.Arena.Radius && g.IsWalkable(x, y) {
				t.Errorf("tile (%d,%d) at distance %.2f should be blocked", x, y, dist)
			}
		}
	}
}

func TestArenaGrid_Pillars(t *testing.T) {
	cfg := arenaConfig(true)
	g := NewArenaGrid(cfg)

	for _, off := range cfg.Arena.PillarOffsets {
		x, y := cfg.Arena.CenterX+off[0], cfg.Arena.CenterY+off[1]
		if got := g.Tile(x, y); got != TilePillar {
			t.Errorf("expected pillar at (%d,%d), got %v", x, y, got)
		}
		if g.IsWalkable(x, y) {
			t.Errorf("pillar at (%d,%d) must not be walkable", x, y)
		}
	}
	if !g.IsWalkable(cfg.Arena.CenterX, cfg.Arena.CenterY) {
		t.Error("arena centre must stay walkable")
	}
}

func TestGrid_OutOfBoundsIsWall(t *testing.T) {
	g := NewArenaGrid(arenaConfig(false))
	coords := [][2]int{{-1, 0}, {0, -1}, {g.Width(), 5}, {5, g.Height()}, {-100, -100}}
	for _, c := range coords {
		if got := g.Tile(c[0], c[1]); got != TileWall {
			t.Errorf("Tile(%d,%d) = %v, want wall", c[0], c[1], got)
		}
		if g.IsWalkable(c[0], c[1]) {
			t.Errorf("IsWalkable(%d,%d) should be false", c[0], c[1])
		}
	}
	if g.IsWalkableAt(-0.5, 300) {
		t.Error("negative world coordinates must resolve to a wall")
	}
}

func TestGrid_WorldQueries(t *testing.T) {
	g := NewArenaGrid(arenaConfig(false))

	cx, cy := g.TileCenter(10, 10)
	if cx != 672 || cy != 672 {
		t.Errorf("TileCenter(10,10) = (%f,%f), want (672,672)", cx, cy)
	}
	tx, ty := g.WorldToTile(640, 703.9)
	if tx != 10 || ty != 10 {
		t.Errorf("WorldToTile = (%d,%d), want (10,10)", tx, ty)
	}
	w, h := g.WorldBounds()
	if w != 1280 || h != 1280 {
		t.Errorf("WorldBounds = (%f,%f)", w, h)
	}
}

func TestTownGrid_Buildings(t *testing.T) {
	cfg := config.Default()
	g, err := NewGridFromRows(cfg.Town.Rows, cfg.GetTileSize())
	if err != nil {
		t.Fatalf("town grid: %v", err)
	}

	wx, wy := g.TileCenter(1, 1)
	if b, ok := g.BuildingAt(wx, wy); !ok || b != TileShopWeapons {
		t.Errorf("expected weapon shop at (1,1), got %v", b)
	}
	wx, wy = g.TileCenter(7, 1)
	if b, ok := g.BuildingAt(wx, wy); !ok || b != TileArenaGate {
		t.Errorf("expected arena gate at (7,1), got %v", b)
	}
	wx, wy = g.TileCenter(3, 3)
	if _, ok := g.BuildingAt(wx, wy); ok {
		t.Error("open street should not be a building")
	}
}

func TestTileFromCode(t *testing.T) {
	tests := []struct {
		code int
		want Tile
	}{
		{0, TileEmpty},
		{1, TileWall},
		{2, TilePillar},
		{5, TileShopHealer},
		{42, TilePillar},
		{-1, TileWall},
	}
	for _, tt := range tests {
		if got := TileFromCode(tt.code); got != tt.want {
			t.Errorf("TileFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestGrid_NearestWalkable(t *testing.T) {
	g, err := NewGridFromRows([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 1, 1},
	}, 64)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	x, y, ok := g.NearestWalkable(1, 1)
	if !ok || x != 3 || y != 2 {
		t.Errorf("expected (3,2), got (%d,%d) ok=%v", x, y, ok)
	}
	x, y, ok = g.NearestWalkable(3, 2)
	if !ok || x != 3 || y != 2 {
		t.Errorf("walkable start should return itself, got (%d,%d)", x, y)
	}

	solid, _ := NewGridFromRows([][]int{{1, 1}, {1, 1}}, 64)
	if _, _, ok := solid.NearestWalkable(0, 0); ok {
		t.Error("solid grid has no walkable tile")
	}
}
