package wfc

import (
	"errors"
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
)

var (
	// ErrNotConnected is returned when a grown graph fails the BFS check.
	ErrNotConnected = errors.New("wfc: generated layout is not fully connected")
	// ErrTooSmall is returned when growth stalled below the minimum size.
	ErrTooSmall = errors.New("wfc: grew fewer cells than the minimum")
)

// Solver grows a warren graph over a coarse grid by frontier expansion with
// per-type connection limits.
type Solver struct {
	Width, Height int
	MinCells      int
	MaxCells      int

	rng      *rand.Rand
	cells    map[geom.Point]*Cell
	frontier []geom.Point
}

// NewSolver creates a solver over a coarse grid of the given dimensions.
func NewSolver(width, height, minCells, maxCells int, rng *rand.Rand) *Solver {
	return &Solver{
		Width:    width,
		Height:   height,
		MinCells: minCells,
		MaxCells: maxCells,
		rng:      rng,
		cells:    make(map[geom.Point]*Cell),
	}
}

// Solve grows the graph from the grid center and returns the placed cells
// in placement order.
func (s *Solver) Solve() ([]*Cell, error) {
	start := geom.Point{X: s.Width / 2, Y: s.Height / 2}
	first := NewCell(CellBurrow, start.X, start.Y)
	s.cells[start] = first
	s.frontier = []geom.Point{start}
	placed := []*Cell{first}

	maxIterations := s.Width * s.Height * 10
	for i := 0; i < maxIterations && len(s.frontier) > 0 && len(placed) < s.MaxCells; i++ {
		idx := s.rng.Intn(len(s.frontier))
		at := s.frontier[idx]

		if cell := s.tryExpand(at); cell != nil {
			placed = append(placed, cell)
		}
		if !s.canExpand(at) {
			s.frontier = append(s.frontier[:idx], s.frontier[idx+1:]...)
		}
	}

	if len(placed) < s.MinCells {
		return nil, ErrTooSmall
	}
	if !s.isConnected(placed) {
		return nil, ErrNotConnected
	}
	return placed, nil
}

// tryExpand grows one new cell off the cell at p, linking the pair.
func (s *Solver) tryExpand(p geom.Point) *Cell {
	cell := s.cells[p]
	if cell == nil || cell.ConnectionCount() >= cell.Type.maxConnections() {
		return nil
	}

	var open []geom.Direction
	for _, dir := range geom.AllDirections() {
		if n, ok := s.neighbor(p, dir); ok && s.cells[n] == nil {
			open = append(open, dir)
		}
	}
	if len(open) == 0 {
		return nil
	}

	dir := open[s.rng.Intn(len(open))]
	n, _ := s.neighbor(p, dir)

	next := NewCell(s.chooseType(), n.X, n.Y)
	next.Connections[dir.Opposite()] = true
	cell.Connections[dir] = true
	s.cells[n] = next
	s.frontier = append(s.frontier, n)
	return next
}

// chooseType draws a weighted cell type: burrows dominate, chambers are
// common, dens occasional.
func (s *Solver) chooseType() CellType {
	roll := s.rng.Intn(10)
	switch {
	case roll < 5:
		return CellBurrow
	case roll < 8:
		return CellChamber
	default:
		return CellDen
	}
}

func (s *Solver) canExpand(p geom.Point) bool {
	cell := s.cells[p]
	if cell == nil || cell.ConnectionCount() >= cell.Type.maxConnections() {
		return false
	}
	for _, dir := range geom.AllDirections() {
		if n, ok := s.neighbor(p, dir); ok && s.cells[n] == nil {
			return true
		}
	}
	return false
}

func (s *Solver) neighbor(p geom.Point, dir geom.Direction) (geom.Point, bool) {
	dx, dy := dir.Delta()
	n := geom.Point{X: p.X + dx, Y: p.Y + dy}
	if n.X < 0 || n.X >= s.Width || n.Y < 0 || n.Y >= s.Height {
		return geom.Point{}, false
	}
	return n, true
}

// isConnected walks the connection graph from the first cell and verifies
// every placed cell is reachable.
func (s *Solver) isConnected(placed []*Cell) bool {
	if len(placed) == 0 {
		return true
	}
	visited := make(map[geom.Point]bool)
	queue := []*Cell{placed[0]}
	visited[geom.Point{X: placed[0].X, Y: placed[0].Y}] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range geom.AllDirections() {
			if !cur.Connections[dir] {
				continue
			}
			dx, dy := dir.Delta()
			n := geom.Point{X: cur.X + dx, Y: cur.Y + dy}
			if visited[n] {
				continue
			}
			if next := s.cells[n]; next != nil {
				visited[n] = true
				queue = append(queue, next)
			}
		}
	}
	return len(visited) == len(placed)
}
