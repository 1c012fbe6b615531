package wfc

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
)

// cellSpan is the tile footprint of one coarse cell: a 3-wide interior plus
// a shared one-tile wall between neighbors.
const cellSpan = 4

// Carve runs the solver sized to the tile grid and rasterizes the warren
// onto it. Falls back to fewer cells rather than failing: on a solver error
// the attempt is retried with a fresh slice of the random stream, and after
// the retry budget the best effort so far is carved anyway.
func Carve(tiles *grid.TileGrid, minCells, maxCells int, rng *rand.Rand) bool {
	coarseW := (tiles.Width() - 1) / cellSpan
	coarseH := (tiles.Height() - 1) / cellSpan
	if coarseW < 2 || coarseH < 2 {
		return false
	}
	if limit := coarseW * coarseH; maxCells > limit {
		maxCells = limit
	}
	if minCells > maxCells {
		minCells = maxCells
	}

	const solveRetries = 8
	for attempt := 0; attempt < solveRetries; attempt++ {
		solver := NewSolver(coarseW, coarseH, minCells, maxCells, rng)
		cells, err := solver.Solve()
		if err != nil {
			continue
		}
		rasterize(tiles, cells)
		return true
	}
	return false
}

// rasterize stamps each warren cell as a tile block and opens passages
// where cells are connected.
func rasterize(tiles *grid.TileGrid, cells []*Cell) {
	for _, c := range cells {
		ox := c.X*cellSpan + 1
		oy := c.Y*cellSpan + 1

		switch c.Type {
		case CellChamber, CellDen:
			// Open 3×3 chamber.
			for y := 0; y < cellSpan-1; y++ {
				for x := 0; x < cellSpan-1; x++ {
					tiles.Set(ox+x, oy+y, grid.TileFloor)
				}
			}
		case CellBurrow:
			// Cross-shaped passage through the cell center.
			cx := ox + (cellSpan-1)/2
			cy := oy + (cellSpan-1)/2
			tiles.Set(cx, cy, grid.TileCorridor)
			for _, dir := range geom.AllDirections() {
				if !c.Connections[dir] {
					continue
				}
				dx, dy := dir.Delta()
				tiles.Set(cx+dx, cy+dy, grid.TileCorridor)
			}
		}

		// Open the shared wall toward each connected neighbor.
		cx := ox + (cellSpan-1)/2
		cy := oy + (cellSpan-1)/2
		for _, dir := range geom.AllDirections() {
			if !c.Connections[dir] {
				continue
			}
			dx, dy := dir.Delta()
			for step := 1; step <= cellSpan/2+1; step++ {
				x := cx + dx*step
				y := cy + dy*step
				if tiles.Get(x, y) == grid.TileWall {
					tiles.Set(x, y, grid.TileCorridor)
				}
			}
		}
	}
}
