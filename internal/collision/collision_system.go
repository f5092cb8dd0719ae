package collision

import "math"

// TileChecker answers walkability for grid cells. Out of range cells must
// report false.
type TileChecker interface {
	IsWalkable(tileX, tileY int) bool
	TileSize() float64
}

// CollisionSystem resolves box movement against the tile grid.
type CollisionSystem struct {
	tileChecker TileChecker
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker) *CollisionSystem {
	return &CollisionSystem{tileChecker: tileChecker}
}

// CanOccupy reports whether every tile the box overlaps is walkable.
func (cs *CollisionSystem) CanOccupy(box BoundingBox) bool {
	tileSize := cs.tileChecker.TileSize()
	minX, minY, maxX, maxY := box.GetBounds()

	startTileX := int(math.Floor(minX / tileSize))
	startTileY := int(math.Floor(minY / tileSize))
	endTileX := int(math.Floor(maxX / tileSize))
	endTileY := int(math.Floor(maxY / tileSize))

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if !cs.tileChecker.IsWalkable(tileX, tileY) {
				return false
			}
		}
	}
	return true
}

// CanMoveTo checks a square box of the given buffer centred on (x, y).
func (cs *CollisionSystem) CanMoveTo(x, y, buffer float64) bool {
	return cs.CanOccupy(SquareBox(x, y, buffer))
}

// Slide applies (dx, dy) one axis at a time so a blocked axis does not stop
// movement along the other. It returns the resulting centre.
func (cs *CollisionSystem) Slide(x, y, dx, dy, buffer float64) (float64, float64) {
	if dx != 0 && cs.CanMoveTo(x+dx, y, buffer) {
		x += dx
	}
	if dy != 0 && cs.CanMoveTo(x, y+dy, buffer) {
		y += dy
	}
	return x, y
}
