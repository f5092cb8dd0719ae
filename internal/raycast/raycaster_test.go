package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellarena/internal/config"
	"spellarena/internal/threading/core"
	"spellarena/internal/world"
)

const tileSize = 64.0

// roomRows returns a w×h room with a wall border and an open interior.
func roomRows(w, h int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

func newGrid(t *testing.T, rows [][]int) *world.Grid {
	t.Helper()
	g, err := world.NewGridFromRows(rows, tileSize)
	require.NoError(t, err)
	return g
}

func testSettings() Settings {
	return SettingsFromConfig(config.Default())
}

func TestCastRay_HitWithinOneStep(t *testing.T) {
	rows := roomRows(12, 12)
	for y := range rows {
		rows[y][5] = 1
	}
	c := NewCaster(newGrid(t, rows), testSettings(), nil)

	hit := c.CastRay(96, 96, 0)
	require.True(t, hit.Hit)
	assert.Equal(t, world.TileWall, hit.Tile)

	boundary := 5 * tileSize
	assert.GreaterOrEqual(t, hit.HitX, boundary)
	assert.LessOrEqual(t, hit.HitX-boundary, c.Settings().StepSize)
	assert.InDelta(t, 96.0, hit.HitY, 1e-9)
	assert.InDelta(t, hit.HitX-96, hit.RawDepth, 1e-9)
}

func TestCastRay_DepthGrowsWithWallDistance(t *testing.T) {
	prev := 0.0
	for wallX := 3; wallX <= 9; wallX++ {
		rows := roomRows(12, 12)
		for y := range rows {
			rows[y][wallX] = 2
		}
		c := NewCaster(newGrid(t, rows), testSettings(), nil)

		hit := c.CastRay(96, 300, 0)
		require.True(t, hit.Hit, "wall at column %d", wallX)
		assert.Equal(t, world.TilePillar, hit.Tile)
		assert.GreaterOrEqual(t, hit.RawDepth, prev, "wall at column %d", wallX)
		prev = hit.RawDepth
	}
}

func TestCastRay_OutOfBoundsIsBlocked(t *testing.T) {
	rows := [][]int{{0, 0, 0, 0}}
	c := NewCaster(newGrid(t, rows), testSettings(), nil)

	hit := c.CastRay(32, 32, 0)
	require.True(t, hit.Hit, "leaving the map must count as a wall")
	assert.Equal(t, world.TileWall, hit.Tile)
	assert.GreaterOrEqual(t, hit.HitX, 4*tileSize)
}

func TestCastRay_MaxDepthWithoutHit(t *testing.T) {
	s := testSettings()
	s.MaxDepth = 100
	c := NewCaster(newGrid(t, roomRows(12, 12)), s, nil)

	hit := c.CastRay(96, 96, 0)
	assert.False(t, hit.Hit)
	assert.Equal(t, 100.0, hit.RawDepth)
}

func TestCastColumn_FisheyeCorrection(t *testing.T) {
	c := NewCaster(newGrid(t, roomRows(20, 20)), testSettings(), nil)
	view := View{X: 640, Y: 640, Angle: 0.3}

	centre := c.CastColumn(view, c.Settings().NumRays/2)
	assert.InDelta(t, view.Angle, centre.RayAngle, 1e-12)
	assert.InDelta(t, centre.RawDepth, centre.Depth, 1e-9)

	edge := c.CastColumn(view, 0)
	require.True(t, edge.Hit)
	assert.Less(t, edge.Depth, edge.RawDepth)
	assert.InDelta(t, edge.RawDepth*math.Cos(c.Settings().FOV/2), edge.Depth, 1e-9)
}

func TestWallHeightAndBrightness(t *testing.T) {
	c := NewCaster(newGrid(t, roomRows(4, 4)), testSettings(), nil)
	s := c.Settings()

	assert.Equal(t, s.ScreenHeight, c.WallHeight(0), "zero depth clamps to screen height")
	assert.Equal(t, s.ScreenHeight, c.WallHeight(10))
	assert.InDelta(t, 21000.0/700.0, c.WallHeight(700), 1e-9)
	assert.Greater(t, c.WallHeight(100), c.WallHeight(200))

	assert.Equal(t, 1.0, c.Brightness(0))
	assert.InDelta(t, 0.5, c.Brightness(s.MaxDepth/2), 1e-9)
	assert.Equal(t, s.BrightnessMin, c.Brightness(s.MaxDepth*2))
}

func TestCastColumns_ParallelMatchesSequential(t *testing.T) {
	rows := roomRows(20, 20)
	rows[8][12] = 2
	rows[12][7] = 2
	grid := newGrid(t, rows)
	view := View{X: 640, Y: 640, Angle: 1.1}

	pool := core.NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	sequential := NewCaster(grid, testSettings(), nil).CastColumns(view)
	parallel := NewCaster(grid, testSettings(), pool).CastColumns(view)

	require.Len(t, sequential, testSettings().NumRays)
	assert.Equal(t, sequential, parallel)
	for i, col := range sequential {
		assert.Equal(t, i, col.Index)
	}
}

func TestNewCaster_Defaults(t *testing.T) {
	c := NewCaster(newGrid(t, roomRows(4, 4)), Settings{ScreenWidth: 320, FOV: 1}, nil)
	assert.Equal(t, 160, c.Settings().NumRays)
	assert.Equal(t, 4.0, c.Settings().StepSize)
}
