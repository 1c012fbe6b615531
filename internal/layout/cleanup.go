package layout

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
)

// Cleanup runs the post-generation repair passes: disconnection pruning,
// wall-hole repair, adjacent-door collapse, and redundant-door removal.
// The connected hint, when non-empty, seeds the pruning flood fill so the
// intended main component survives. Returns the number of pruned cells.
func Cleanup(tiles *grid.TileGrid, rng *rand.Rand, connected []geom.Point) int {
	pruned := pruneDisconnected(tiles, rng, connected)
	repairWallHoles(tiles)
	collapseAdjacentDoors(tiles)
	removeRedundantDoors(tiles, rng)
	return pruned
}

// pruneDisconnected flood-fills from one passable cell and seals every
// passable cell outside the filled component back to Wall, guaranteeing a
// single connected playable component.
func pruneDisconnected(tiles *grid.TileGrid, rng *rand.Rand, connected []geom.Point) int {
	var start geom.Point
	found := false
	for _, p := range connected {
		if tiles.Get(p.X, p.Y).IsPassable() {
			start = p
			found = true
			break
		}
	}
	if !found {
		var ok bool
		start, ok = tiles.FindPassable()
		if !ok {
			return 0
		}
	}

	filled := tiles.FloodFill(start, grid.TileKind.IsPassable)
	pruned := 0
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			if !tiles.Get(x, y).IsPassable() {
				continue
			}
			if !filled[geom.Point{X: x, Y: y}] {
				tiles.Set(x, y, grid.TileWall)
				pruned++
			}
		}
	}
	return pruned
}

// repairWallHoles forces plain Wall cells back to WallRoom where a room
// wall runs through them on one axis and the perpendicular axis has
// mismatched floor/non-floor neighbors. Without this, pruned tunnels can
// leave diagonal floor leaks through room corners.
func repairWallHoles(tiles *grid.TileGrid) {
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			if tiles.Get(x, y) != grid.TileWall {
				continue
			}
			horizWall := tiles.Get(x-1, y).IsWallFamily() && tiles.Get(x-1, y) != grid.TileWall &&
				tiles.Get(x+1, y).IsWallFamily() && tiles.Get(x+1, y) != grid.TileWall
			vertWall := tiles.Get(x, y-1).IsWallFamily() && tiles.Get(x, y-1) != grid.TileWall &&
				tiles.Get(x, y+1).IsWallFamily() && tiles.Get(x, y+1) != grid.TileWall

			if horizWall && mismatched(tiles.Get(x, y-1), tiles.Get(x, y+1)) {
				tiles.Set(x, y, grid.TileWallRoom)
			} else if vertWall && mismatched(tiles.Get(x-1, y), tiles.Get(x+1, y)) {
				tiles.Set(x, y, grid.TileWallRoom)
			}
		}
	}
}

func mismatched(a, b grid.TileKind) bool {
	return (a == grid.TileFloor) != (b == grid.TileFloor)
}

// collapseAdjacentDoors merges orthogonally adjacent door pairs into a
// single opening by turning the second door of each pair into Floor.
// Repeats until no adjacent pair remains.
func collapseAdjacentDoors(tiles *grid.TileGrid) {
	for changed := true; changed; {
		changed = false
		for y := 0; y < tiles.Height(); y++ {
			for x := 0; x < tiles.Width(); x++ {
				if !tiles.Get(x, y).IsDoor() {
					continue
				}
				if tiles.Get(x+1, y).IsDoor() {
					tiles.Set(x+1, y, grid.TileFloor)
					changed = true
				}
				if tiles.Get(x, y+1).IsDoor() {
					tiles.Set(x, y+1, grid.TileFloor)
					changed = true
				}
			}
		}
	}
}

// removeRedundantDoors seals one side of double doorways: a WallRoom cell
// flanked along its wall axis by two openings into the same pair of rooms
// keeps only one of them. The draw is 50/50, but a door whose sealing would
// strand an isolated one-tile nub loses its claim to the other.
func removeRedundantDoors(tiles *grid.TileGrid, rng *rand.Rand) {
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			if tiles.Get(x, y) != grid.TileWallRoom {
				continue
			}
			// Horizontal wall line: openings left and right, rooms above
			// and below.
			if isOpening(tiles.Get(x-1, y)) && isOpening(tiles.Get(x+1, y)) &&
				tiles.Get(x, y-1) == grid.TileFloor && tiles.Get(x, y+1) == grid.TileFloor {
				sealOne(tiles, rng, geom.Point{X: x - 1, Y: y}, geom.Point{X: x + 1, Y: y})
			}
			// Vertical wall line: openings above and below, rooms left and
			// right.
			if isOpening(tiles.Get(x, y-1)) && isOpening(tiles.Get(x, y+1)) &&
				tiles.Get(x-1, y) == grid.TileFloor && tiles.Get(x+1, y) == grid.TileFloor {
				sealOne(tiles, rng, geom.Point{X: x, Y: y - 1}, geom.Point{X: x, Y: y + 1})
			}
		}
	}
}

func isOpening(k grid.TileKind) bool {
	return k.IsDoor() || k == grid.TileFloor
}

// sealOne seals one of two redundant openings back to WallRoom.
func sealOne(tiles *grid.TileGrid, rng *rand.Rand, a, b geom.Point) {
	first, second := a, b
	if rng.Intn(2) == 0 {
		first, second = b, a
	}
	if trySeal(tiles, first) {
		return
	}
	trySeal(tiles, second)
}

// trySeal seals the opening unless doing so would strand a nub or split the
// playable area, in which case the grid is restored untouched.
func trySeal(tiles *grid.TileGrid, p geom.Point) bool {
	if leavesNub(tiles, p) {
		return false
	}
	prev := tiles.Get(p.X, p.Y)
	tiles.Set(p.X, p.Y, grid.TileWallRoom)
	if !tiles.IsConnected() {
		tiles.Set(p.X, p.Y, prev)
		return false
	}
	return true
}

// leavesNub reports whether sealing the opening would leave an adjacent
// passable cell with no remaining passable neighbor.
func leavesNub(tiles *grid.TileGrid, p geom.Point) bool {
	for _, dir := range geom.AllDirections() {
		dx, dy := dir.Delta()
		n := geom.Point{X: p.X + dx, Y: p.Y + dy}
		if !tiles.Get(n.X, n.Y).IsPassable() {
			continue
		}
		exits := 0
		for _, d2 := range geom.AllDirections() {
			ex, ey := d2.Delta()
			q := geom.Point{X: n.X + ex, Y: n.Y + ey}
			if q == p {
				continue
			}
			if tiles.Get(q.X, q.Y).IsPassable() {
				exits++
			}
		}
		if exits == 0 {
			return true
		}
	}
	return false
}
