package grid

// Layout is the finished product of one generation call: a tile grid and a
// parallel terrain grid. Ownership passes to the caller; the generator keeps
// no reference once it returns.
type Layout struct {
	Tiles   *TileGrid
	Terrain *TerrainGrid
}

// NewLayout allocates an empty layout of the given dimensions.
func NewLayout(width, height int) *Layout {
	return &Layout{
		Tiles:   NewTileGrid(width, height),
		Terrain: NewTerrainGrid(width, height),
	}
}
