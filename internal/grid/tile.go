package grid

// TileKind is the structural classification of one grid cell, distinct from
// the cosmetic terrain id painted on top of it.
type TileKind int

const (
	TileWall TileKind = iota
	TileWallRoom
	TileCorner
	TileEntry
	TileFloor
	TileCorridor
	TileDoor
	TileDoorClosed
	TileDoorLocked
	TileTemp
)

func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileWallRoom:
		return "wall_room"
	case TileCorner:
		return "corner"
	case TileEntry:
		return "entry"
	case TileFloor:
		return "floor"
	case TileCorridor:
		return "corridor"
	case TileDoor:
		return "door"
	case TileDoorClosed:
		return "door_closed"
	case TileDoorLocked:
		return "door_locked"
	case TileTemp:
		return "temp"
	}
	return "unknown"
}

// IsDoor reports whether the kind is one of the door variants.
func (k TileKind) IsDoor() bool {
	return k == TileDoor || k == TileDoorClosed || k == TileDoorLocked
}

// IsWallFamily reports whether the kind is structural wall: plain wall,
// room wall, corner, or entry-eligible wall.
func (k TileKind) IsWallFamily() bool {
	return k == TileWall || k == TileWallRoom || k == TileCorner || k == TileEntry
}

// IsPassable reports whether a creature could occupy the cell. Doors count
// as passable for connectivity purposes regardless of lock state.
func (k TileKind) IsPassable() bool {
	return k == TileFloor || k == TileCorridor || k.IsDoor()
}
