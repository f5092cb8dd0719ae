package world

// Tile classifies one grid cell. Codes match the integer map format:
// 0 walkable, 1 wall, 2 and up obstacles and town buildings.
type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePillar
	TileShopWeapons
	TileShopMagic
	TileShopHealer
	TileArenaGate
)

// TileFromCode maps a map file integer to a Tile. Negative codes are walls and
// unknown positive codes are treated as generic obstacles.
func TileFromCode(code int) Tile {
	switch {
	case code < 0:
		return TileWall
	case code > int(TileArenaGate):
		return TilePillar
	default:
		return Tile(code)
	}
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TilePillar:
		return "pillar"
	case TileShopWeapons:
		return "weapon_shop"
	case TileShopMagic:
		return "magic_shop"
	case TileShopHealer:
		return "healer"
	case TileArenaGate:
		return "arena_gate"
	default:
		return "unknown"
	}
}

// IsBuilding reports whether the tile is an interactive town building.
func (t Tile) IsBuilding() bool {
	return t >= TileShopWeapons && t <= TileArenaGate
}
