// Package feature overlays terrain features onto a generated layout:
// lakes, rivers, patches, chunks, and stains, all scaled by the ratio of
// actual zone area to the theme's average area.
package feature

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/theme"
)

// lakeVertices is the vertex count of the jittered lake polygon.
const lakeVertices = 16

// Painter applies a theme's feature list to a layout.
type Painter struct {
	tiles   *grid.TileGrid
	terrain *grid.TerrainGrid
	rng     *rand.Rand
}

// NewPainter creates a painter over the layout's grids.
func NewPainter(layout *grid.Layout, rng *rand.Rand) *Painter {
	return &Painter{tiles: layout.Tiles, terrain: layout.Terrain, rng: rng}
}

// Paint applies every feature in the list. Ratio is actual area divided by
// the theme's average area; densities above 1.0 scale linearly with it,
// lower densities act as a single probability gate.
func (p *Painter) Paint(features []theme.Feature, ratio float64) {
	for _, f := range features {
		n := p.occurrences(f.Density, ratio)
		for i := 0; i < n; i++ {
			p.paintOne(f)
		}
	}
}

func (p *Painter) occurrences(density, ratio float64) int {
	if density*100 > 100 {
		n := int(density*ratio + 0.5)
		if n < 1 {
			n = 1
		}
		return n
	}
	if p.rng.Float64() < density {
		return 1
	}
	return 0
}

func (p *Painter) paintOne(f theme.Feature) {
	switch f.Kind {
	case "lake":
		p.paintLake(f)
	case "river":
		p.paintRiver(f)
	case "patch":
		p.paintFiltered(f, func(x, y int) bool { return p.tiles.Get(x, y) == grid.TileFloor })
	case "chunk":
		p.paintFiltered(f, func(x, y int) bool { return p.tiles.Get(x, y).IsWallFamily() })
	case "stain":
		p.paintFiltered(f, p.isExposedWall)
	}
}

// featureRect picks a random size×size rectangle inside the grid for one
// feature occurrence.
func (p *Painter) featureRect(size int) geom.Rectangle {
	w := p.tiles.Width()
	h := p.tiles.Height()
	if size > w {
		size = w
	}
	if size > h {
		size = h
	}
	x := p.rng.Intn(w - size + 1)
	y := p.rng.Intn(h - size + 1)
	return geom.Rectangle{X: x, Y: y, Width: size, Height: size}
}

// paintLake unconditionally overwrites terrain inside a jittered polygon
// bounding the feature rectangle, regardless of what tiles lie underneath.
func (p *Painter) paintLake(f theme.Feature) {
	r := p.featureRect(f.Size)
	poly := geom.JitterPolygon(r, lakeVertices, p.rng)
	poly.Fill(func(x, y int) {
		p.terrain.SetTerrain(x, y, f.Terrain)
	})
}

// paintFiltered overwrites terrain inside a jittered feature polygon, but
// only on cells passing the filter.
func (p *Painter) paintFiltered(f theme.Feature, accept func(x, y int) bool) {
	r := p.featureRect(f.Size)
	poly := geom.JitterPolygon(r, 8, p.rng)
	poly.Fill(func(x, y int) {
		if p.tiles.InBounds(x, y) && accept(x, y) {
			p.terrain.SetTerrain(x, y, f.Terrain)
		}
	})
}

// isExposedWall accepts wall-family cells with at least one Floor neighbor.
func (p *Painter) isExposedWall(x, y int) bool {
	if !p.tiles.Get(x, y).IsWallFamily() {
		return false
	}
	for _, dir := range geom.AllDirections() {
		dx, dy := dir.Delta()
		if p.tiles.Get(x+dx, y+dy) == grid.TileFloor {
			return true
		}
	}
	return false
}

// paintRiver rasterizes a jittered ribbon across the area: a polyline from
// one edge to the opposite edge with a band of the feature's size around
// every vertex step.
func (p *Painter) paintRiver(f theme.Feature) {
	w := p.tiles.Width()
	h := p.tiles.Height()
	halfBand := f.Size / 2

	// Flow horizontally or vertically across the whole area.
	horizontal := p.rng.Intn(2) == 0
	if horizontal {
		y := p.rng.Intn(h)
		for x := 0; x < w; x++ {
			p.paintBand(x, y, halfBand, f.Terrain)
			// Jitter the course one cell up or down about a third of the time.
			if p.rng.Intn(3) == 0 {
				y += p.rng.Intn(3) - 1
				y = clamp(y, 0, h-1)
			}
		}
		return
	}
	x := p.rng.Intn(w)
	for y := 0; y < h; y++ {
		p.paintBand(x, y, halfBand, f.Terrain)
		if p.rng.Intn(3) == 0 {
			x += p.rng.Intn(3) - 1
			x = clamp(x, 0, w-1)
		}
	}
}

// paintBand stamps a square band of terrain centered on the cell.
func (p *Painter) paintBand(cx, cy, half int, terrain string) {
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			if p.tiles.InBounds(x, y) {
				p.terrain.SetTerrain(x, y, terrain)
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
