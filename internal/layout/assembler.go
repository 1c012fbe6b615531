// Package layout assembles rectangle-based dungeon families: room
// placement, probabilistic room merging, tunnel connection, and the repair
// passes that guarantee a single connected playable component.
package layout

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/carve"
	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/packer"
)

// Family selects the rectangle strategy used for room footprints.
type Family int

const (
	FamilySparse Family = iota
	FamilyPacked
	FamilyBSP
)

// connectRetries is how many tunnel attempts each room gets before it is
// left disconnected and recorded in the result.
const connectRetries = 10

// Result reports how assembly went. Generation never fails outright; a
// degraded layout shows up here as dropped rooms or failed connections.
type Result struct {
	Rooms          []carve.Room
	RequestedRooms int
	PlacedRooms    int
	MergedRooms    int
	FailedConnects int
	PrunedCells    int
}

type assembler struct {
	tiles *grid.TileGrid
	rng   *rand.Rand

	rooms         []carve.Room
	connectedSet  map[geom.Point]bool
	connectedList []geom.Point

	result Result
}

// Assemble generates rooms with the requested strategy, stamps them, merges
// a fraction, tunnels the rest together, and repairs the grid. The tile
// grid must come in filled with TileWall.
func Assemble(tiles *grid.TileGrid, family Family, c packer.Constraints, count int, rng *rand.Rand) Result {
	a := &assembler{
		tiles:        tiles,
		rng:          rng,
		connectedSet: make(map[geom.Point]bool),
	}

	bounds := tiles.Bounds()
	var rects []geom.Rectangle
	switch family {
	case FamilyBSP:
		rects = packer.BSP(bounds, c, rng)
	case FamilyPacked:
		rects = packer.Packed(bounds, c, count, rng)
	default:
		rects = packer.Sparse(bounds, c, count, rng)
	}
	rng.Shuffle(len(rects), func(i, j int) { rects[i], rects[j] = rects[j], rects[i] })

	a.result.RequestedRooms = count
	if family == FamilyBSP {
		a.result.RequestedRooms = len(rects)
	}

	for _, r := range rects {
		a.rooms = append(a.rooms, carve.StampRoom(tiles, r, rng))
	}
	a.result.PlacedRooms = len(a.rooms)

	a.mergePass(family)
	a.connectPass()
	a.result.PrunedCells = Cleanup(tiles, a.rng, a.connectedList)

	a.result.Rooms = a.rooms
	return a.result
}

// mergePass fuses a fraction of adjacent room pairs into L/T shapes by
// knocking out the wall strip they share. Merged rooms are skipped by the
// connection pass since their partner's tunnel reaches both.
func (a *assembler) mergePass(family Family) {
	if len(a.rooms) < 2 {
		return
	}

	target := len(a.rooms) / 10
	for i := 0; i < len(a.rooms); i++ {
		if family == FamilyPacked {
			// Packed layouts merge until a Bernoulli draw stops them.
			if a.rng.Float64() < 0.25 {
				break
			}
		} else if a.result.MergedRooms >= target {
			break
		}

		ri := a.rng.Intn(len(a.rooms))
		room := &a.rooms[ri]
		if room.Merged || room.Shape != carve.ShapeRect {
			continue
		}
		for j := range a.rooms {
			if j == ri {
				continue
			}
			other := &a.rooms[j]
			if other.Shape != carve.ShapeRect {
				continue
			}
			// Merging equal footprints would just make a bigger rectangle;
			// the pass only fuses unequal neighbors.
			if room.Rect.Width == other.Rect.Width && room.Rect.Height == other.Rect.Height {
				continue
			}
			if a.fuse(room.Rect, other.Rect) {
				room.Merged = true
				a.result.MergedRooms++
				break
			}
		}
	}
}

// fuse knocks out the shared wall strip between two adjacent rectangles.
// Returns false when the rectangles do not share an edge wide enough for a
// strip of more than one tile.
func (a *assembler) fuse(r1, r2 geom.Rectangle) bool {
	// Side-by-side: r1's right wall column touches r2's left wall column.
	if r1.Right() == r2.X || r2.Right() == r1.X {
		top := max(r1.Y, r2.Y) + 1
		bottom := min(r1.Bottom(), r2.Bottom()) - 1
		if bottom-top <= 1 {
			return false
		}
		x1 := r1.Right() - 1
		x2 := r2.X
		if r2.Right() == r1.X {
			x1 = r2.Right() - 1
			x2 = r1.X
		}
		for y := top; y < bottom; y++ {
			a.tiles.Set(x1, y, grid.TileFloor)
			a.tiles.Set(x2, y, grid.TileFloor)
		}
		return true
	}
	// Stacked: r1's bottom wall row touches r2's top wall row.
	if r1.Bottom() == r2.Y || r2.Bottom() == r1.Y {
		left := max(r1.X, r2.X) + 1
		right := min(r1.Right(), r2.Right()) - 1
		if right-left <= 1 {
			return false
		}
		y1 := r1.Bottom() - 1
		y2 := r2.Y
		if r2.Bottom() == r1.Y {
			y1 = r2.Bottom() - 1
			y2 = r1.Y
		}
		for x := left; x < right; x++ {
			a.tiles.Set(x, y1, grid.TileFloor)
			a.tiles.Set(x, y2, grid.TileFloor)
		}
		return true
	}
	return false
}

// connectPass tunnels each room to the already-connected area in placement
// order. Rooms are added to the connected area whether or not their tunnel
// succeeded so that later rooms can still reach them.
func (a *assembler) connectPass() {
	for i := range a.rooms {
		room := &a.rooms[i]
		if !room.Merged && len(a.connectedList) > 0 {
			if !a.connectRoom(room) {
				a.result.FailedConnects++
			}
		}
		a.absorbRoom(room)
	}
}

// connectRoom makes up to connectRetries tunnel attempts from the room
// center to random points of the connected area.
func (a *assembler) connectRoom(room *carve.Room) bool {
	from := room.Rect.Center()
	for attempt := 0; attempt < connectRetries; attempt++ {
		to := a.connectedList[a.rng.Intn(len(a.connectedList))]
		if a.tunnel(from, to, attempt%2 == 0) {
			return true
		}
	}
	return false
}

// absorbRoom adds the room's passable cells to the connected area.
func (a *assembler) absorbRoom(room *carve.Room) {
	for y := room.Rect.Y; y < room.Rect.Bottom(); y++ {
		for x := room.Rect.X; x < room.Rect.Right(); x++ {
			if a.tiles.Get(x, y).IsPassable() {
				a.addConnected(geom.Point{X: x, Y: y})
			}
		}
	}
}

func (a *assembler) addConnected(p geom.Point) {
	if a.connectedSet[p] {
		return
	}
	a.connectedSet[p] = true
	a.connectedList = append(a.connectedList, p)
}
