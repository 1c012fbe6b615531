package layout

import (
	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
)

// tunnelEdit records one cell changed by a tunnel attempt so a failed
// attempt can be reverted.
type tunnelEdit struct {
	at   geom.Point
	prev grid.TileKind
}

// tunnel probes an L-shaped path from the room center toward a point in the
// connected area, horizontally then vertically or the reverse. Probe cells
// are marked Temp and committed to Corridor only when the path reaches the
// connected area; hitting a Corner or Entry aborts the whole attempt.
// Breaching a room wall plants a door with Entry cells beside it.
func (a *assembler) tunnel(from, to geom.Point, horizontalFirst bool) bool {
	var edits []tunnelEdit
	ok := a.probePath(from, to, horizontalFirst, &edits)

	if !ok {
		// Revert in reverse order so overlapping edits unwind cleanly.
		for i := len(edits) - 1; i >= 0; i-- {
			a.tiles.Set(edits[i].at.X, edits[i].at.Y, edits[i].prev)
		}
		return false
	}

	for _, e := range edits {
		p := e.at
		if a.tiles.Get(p.X, p.Y) == grid.TileTemp {
			a.tiles.Set(p.X, p.Y, grid.TileCorridor)
		}
		// Entry cells planted beside doors are walls; only passable cells
		// join the connected area.
		if a.tiles.Get(p.X, p.Y).IsPassable() {
			a.addConnected(p)
		}
	}
	return true
}

// probePath walks the path one cell at a time, recording edits. Returns
// true when the probe reaches the connected area or an existing corridor.
func (a *assembler) probePath(from, to geom.Point, horizontalFirst bool, edits *[]tunnelEdit) bool {
	cur := from
	for cur != to {
		next := cur
		if horizontalFirst && cur.X != to.X {
			next.X += sign(to.X - cur.X)
		} else if cur.Y != to.Y {
			next.Y += sign(to.Y - cur.Y)
		} else {
			next.X += sign(to.X - cur.X)
		}
		cur = next

		kind := a.tiles.Get(cur.X, cur.Y)
		switch {
		case kind == grid.TileCorner || kind == grid.TileEntry:
			return false
		case kind == grid.TileCorridor:
			return true
		case a.connectedSet[cur]:
			return true
		case kind == grid.TileFloor:
			// Own-room floor or a not-yet-connected open area: walk on.
		case kind == grid.TileWallRoom:
			a.placeDoor(cur, edits)
		case kind.IsDoor():
			// An earlier tunnel's door that is not yet in the connected
			// area; walk through it.
		default:
			// Plain wall (or a temp from this same probe's other leg).
			*edits = append(*edits, tunnelEdit{at: cur, prev: kind})
			a.tiles.Set(cur.X, cur.Y, grid.TileTemp)
		}
	}
	// Arrived at the target, which was drawn from the connected area.
	return true
}

// placeDoor converts a breached room wall to a door, locked half the time,
// and upgrades the flanking wall cells to Entry so the cleanup pass can
// recognize the doorway.
func (a *assembler) placeDoor(at geom.Point, edits *[]tunnelEdit) {
	kind := grid.TileDoor
	if a.rng.Intn(2) == 0 {
		kind = grid.TileDoorLocked
	}
	*edits = append(*edits, tunnelEdit{at: at, prev: grid.TileWallRoom})
	a.tiles.Set(at.X, at.Y, kind)

	for _, dir := range geom.AllDirections() {
		dx, dy := dir.Delta()
		n := geom.Point{X: at.X + dx, Y: at.Y + dy}
		if a.tiles.Get(n.X, n.Y) == grid.TileWallRoom {
			*edits = append(*edits, tunnelEdit{at: n, prev: grid.TileWallRoom})
			a.tiles.Set(n.X, n.Y, grid.TileEntry)
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
