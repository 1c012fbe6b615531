package carve

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
)

// MazeStyle selects the growth bias of the maze carver.
type MazeStyle int

const (
	// MazeOpen grows a sprawling corridor tree across the whole area.
	MazeOpen MazeStyle = iota
	// MazeSquashed biases growth toward the start cell so the carved area
	// bunches into a blob instead of a uniform tree.
	MazeSquashed
)

// CarveMaze carves a corridor network into bounds via randomized
// incremental growth. Roughness in [0,1] controls branching: 0 digs long
// winding passages, 1 branches at every opportunity. A new cell is only
// opened when it touches exactly one carved cell, which keeps passages one
// cell wide.
func CarveMaze(bounds geom.Rectangle, style MazeStyle, roughness float64, rng *rand.Rand) *Occupancy {
	mask := NewOccupancy(bounds)
	if bounds.Width < 1 || bounds.Height < 1 {
		return mask
	}
	if roughness < 0 {
		roughness = 0
	}
	if roughness > 1 {
		roughness = 1
	}

	start := bounds.Center()
	mask.Carve(start.X, start.Y)
	frontier := []geom.Point{start}

	for len(frontier) > 0 {
		// Branchy growth expands from a random frontier cell; corridor
		// growth keeps extending the most recent one. The squashed style
		// favors old cells near the start, pulling the network inward.
		var idx int
		switch {
		case style == MazeSquashed:
			idx = rng.Intn(len(frontier))
			if rng.Float64() > roughness {
				idx = idx / 2
			}
		case rng.Float64() < roughness:
			idx = rng.Intn(len(frontier))
		default:
			idx = len(frontier) - 1
		}
		cell := frontier[idx]

		next, ok := pickGrowth(mask, bounds, cell, style, rng)
		if !ok {
			frontier = append(frontier[:idx], frontier[idx+1:]...)
			continue
		}
		mask.Carve(next.X, next.Y)
		frontier = append(frontier, next)
	}
	return mask
}

// pickGrowth returns a random neighbor of cell that can be carved without
// widening a passage. The squashed style tolerates one extra carved
// neighbor, letting corridors clump together.
func pickGrowth(mask *Occupancy, bounds geom.Rectangle, cell geom.Point, style MazeStyle, rng *rand.Rand) (geom.Point, bool) {
	maxNeighbors := 1
	if style == MazeSquashed {
		maxNeighbors = 2
	}

	dirs := geom.AllDirections()
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, dir := range dirs {
		dx, dy := dir.Delta()
		nx, ny := cell.X+dx, cell.Y+dy
		if !bounds.Contains(nx, ny) || mask.At(nx, ny) {
			continue
		}
		if carvedNeighbors(mask, nx, ny) <= maxNeighbors {
			return geom.Point{X: nx, Y: ny}, true
		}
	}
	return geom.Point{}, false
}

func carvedNeighbors(mask *Occupancy, x, y int) int {
	n := 0
	for _, dir := range geom.AllDirections() {
		dx, dy := dir.Delta()
		if mask.At(x+dx, y+dy) {
			n++
		}
	}
	return n
}
