package grid

import (
	"fmt"
	"sort"
	"strings"
)

// TerrainCell is one painted terrain record: a terrain id plus zero or more
// entity markers of the form "creature:<id>" or "item:<id>".
type TerrainCell struct {
	Terrain string   `yaml:"terrain"`
	Markers []string `yaml:"markers,omitempty"`
}

// TerrainGrid is a buffer of optional terrain cells parallel to a TileGrid.
// A nil cell means no terrain was painted there.
type TerrainGrid struct {
	width, height int
	cells         []*TerrainCell
}

// NewTerrainGrid allocates an empty terrain grid.
func NewTerrainGrid(width, height int) *TerrainGrid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &TerrainGrid{
		width:  width,
		height: height,
		cells:  make([]*TerrainCell, width*height),
	}
}

// Width returns the grid width.
func (g *TerrainGrid) Width() int { return g.width }

// Height returns the grid height.
func (g *TerrainGrid) Height() int { return g.height }

// Get returns the cell at (x, y), nil when unpainted or out of bounds.
func (g *TerrainGrid) Get(x, y int) *TerrainCell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y*g.width+x]
}

// SetTerrain overwrites the terrain id at (x, y), keeping any markers that
// were already attached to the cell.
func (g *TerrainGrid) SetTerrain(x, y int, terrain string) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	idx := y*g.width + x
	if g.cells[idx] == nil {
		g.cells[idx] = &TerrainCell{Terrain: terrain}
		return
	}
	g.cells[idx].Terrain = terrain
}

// AddMarker appends an entity marker at (x, y), creating the cell with an
// empty terrain id if nothing was painted there yet.
func (g *TerrainGrid) AddMarker(x, y int, marker string) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	idx := y*g.width + x
	if g.cells[idx] == nil {
		g.cells[idx] = &TerrainCell{}
	}
	g.cells[idx].Markers = append(g.cells[idx].Markers, marker)
}

// CreatureMarker formats a creature spawn marker.
func CreatureMarker(id string) string {
	return fmt.Sprintf("creature:%s", id)
}

// ItemMarker formats an item spawn marker.
func ItemMarker(id string) string {
	return fmt.Sprintf("item:%s", id)
}

// Each calls visit for every painted cell in row-major order.
func (g *TerrainGrid) Each(visit func(x, y int, c *TerrainCell)) {
	for i, c := range g.cells {
		if c == nil {
			continue
		}
		visit(i%g.width, i/g.width, c)
	}
}

// Fingerprint serializes the painted cells into a stable byte string used
// for layout checksums. Cells are emitted in row-major order.
func (g *TerrainGrid) Fingerprint() []byte {
	var sb strings.Builder
	for i, c := range g.cells {
		if c == nil {
			continue
		}
		markers := append([]string(nil), c.Markers...)
		sort.Strings(markers)
		fmt.Fprintf(&sb, "%d:%s:%s;", i, c.Terrain, strings.Join(markers, ","))
	}
	return []byte(sb.String())
}
