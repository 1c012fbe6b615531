// Package carve stamps room footprints and carves corridor and cavern
// networks into tile buffers. All carvers draw randomness from an injected
// source only.
package carve

import (
	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
)

// Occupancy is a boolean carve mask over a rectangular area. Carvers work on
// masks so the same growth algorithms can be rasterized into different tile
// kinds, or unioned before rasterization.
type Occupancy struct {
	Bounds geom.Rectangle
	cells  []bool
}

// NewOccupancy allocates an empty mask covering bounds.
func NewOccupancy(bounds geom.Rectangle) *Occupancy {
	return &Occupancy{
		Bounds: bounds,
		cells:  make([]bool, bounds.Width*bounds.Height),
	}
}

// At reports whether the cell at absolute coordinates is carved.
func (o *Occupancy) At(x, y int) bool {
	if !o.Bounds.Contains(x, y) {
		return false
	}
	return o.cells[(y-o.Bounds.Y)*o.Bounds.Width+(x-o.Bounds.X)]
}

// Carve marks the cell at absolute coordinates. Out-of-bounds carves are
// dropped.
func (o *Occupancy) Carve(x, y int) {
	if !o.Bounds.Contains(x, y) {
		return
	}
	o.cells[(y-o.Bounds.Y)*o.Bounds.Width+(x-o.Bounds.X)] = true
}

// Count returns the number of carved cells.
func (o *Occupancy) Count() int {
	n := 0
	for _, c := range o.cells {
		if c {
			n++
		}
	}
	return n
}

// Union merges another mask into this one. Cells outside this mask's bounds
// are ignored.
func (o *Occupancy) Union(other *Occupancy) {
	for y := other.Bounds.Y; y < other.Bounds.Bottom(); y++ {
		for x := other.Bounds.X; x < other.Bounds.Right(); x++ {
			if other.At(x, y) {
				o.Carve(x, y)
			}
		}
	}
}

// Rasterize writes carved cells into the tile grid as Floor. Uncarved cells
// are left untouched, so masks can be layered onto an existing layout.
func (o *Occupancy) Rasterize(tiles *grid.TileGrid) {
	for y := o.Bounds.Y; y < o.Bounds.Bottom(); y++ {
		for x := o.Bounds.X; x < o.Bounds.Right(); x++ {
			if o.At(x, y) {
				tiles.Set(x, y, grid.TileFloor)
			}
		}
	}
}
