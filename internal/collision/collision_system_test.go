package collision

import "testing"

// mockTileChecker implements TileChecker for testing
type mockTileChecker struct {
	width, height int
	blockingTiles map[int]map[int]bool
}

func newMockTileChecker(width, height int) *mockTileChecker {
	return &mockTileChecker{
		width:         width,
		height:        height,
		blockingTiles: make(map[int]map[int]bool),
	}
}

func (m *mockTileChecker) IsWalkable(tileX, tileY int) bool {
	if tileX < 0 || tileY < 0 || tileX >= m.width || tileY >= m.height {
		return false
	}
	if row, ok := m.blockingTiles[tileY]; ok {
		return !row[tileX]
	}
	return true
}

func (m *mockTileChecker) TileSize() float64 {
	return 64
}

func (m *mockTileChecker) setBlocking(tileX, tileY int, blocking bool) {
	if m.blockingTiles[tileY] == nil {
		m.blockingTiles[tileY] = make(map[int]bool)
	}
	m.blockingTiles[tileY][tileX] = blocking
}

func TestCanMoveTo_OpenAndBlocked(t *testing.T) {
	checker := newMockTileChecker(10, 10)
	cs := NewCollisionSystem(checker)

	if !cs.CanMoveTo(96, 96, 8) {
		t.Error("expected open tile to be reachable")
	}

	checker.setBlocking(2, 1, true)
	// Box spans x 122..138, touching tile 2
	if cs.CanMoveTo(130, 96, 8) {
		t.Error("expected box overlapping a blocked tile to be rejected")
	}
}

func TestCanMoveTo_OutOfBounds(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10))

	if cs.CanMoveTo(4, 96, 8) {
		t.Error("box crossing the left edge must be blocked")
	}
	if cs.CanMoveTo(96, 636, 8) {
		t.Error("box crossing the bottom edge must be blocked")
	}
}

func TestSlide_AlongWall(t *testing.T) {
	checker := newMockTileChecker(10, 10)
	cs := NewCollisionSystem(checker)
	for y := 0; y < 10; y++ {
		checker.setBlocking(3, y, true)
	}

	// Moving diagonally into the wall column keeps the vertical component.
	x, y := cs.Slide(180, 300, 10, 10, 8)
	if x != 180 {
		t.Errorf("expected x to stay at 180, got %f", x)
	}
	if y != 310 {
		t.Errorf("expected y to advance to 310, got %f", y)
	}
}

func TestBoundingBox_Geometry(t *testing.T) {
	box := SquareBox(10, 10, 5)
	corners := box.GetCorners()
	if corners[0] != (Point{5, 5}) || corners[3] != (Point{15, 15}) {
		t.Errorf("unexpected corners %+v", corners)
	}
	if !box.Contains(Point{X: 12, Y: 7}) {
		t.Error("expected point inside box")
	}
	if box.Intersects(SquareBox(30, 30, 5)) {
		t.Error("distant boxes should not intersect")
	}
	if !box.Intersects(SquareBox(18, 10, 5)) {
		t.Error("overlapping boxes should intersect")
	}
}
