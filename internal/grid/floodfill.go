package grid

import "github.com/emberkeep/zoneforge/internal/geom"

// FloodFill returns the set of cells 4-adjacent-reachable from the start
// cell over cells accepted by the predicate. The fill walks an explicit
// stack rather than recursing, so large open grids cannot blow the
// goroutine stack. The start cell itself must satisfy the predicate or the
// result is empty.
func (g *TileGrid) FloodFill(start geom.Point, accept func(TileKind) bool) map[geom.Point]bool {
	filled := make(map[geom.Point]bool)
	if !g.InBounds(start.X, start.Y) || !accept(g.Get(start.X, start.Y)) {
		return filled
	}

	stack := []geom.Point{start}
	filled[start] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dir := range geom.AllDirections() {
			dx, dy := dir.Delta()
			n := geom.Point{X: p.X + dx, Y: p.Y + dy}
			if filled[n] || !g.InBounds(n.X, n.Y) {
				continue
			}
			if !accept(g.Get(n.X, n.Y)) {
				continue
			}
			filled[n] = true
			stack = append(stack, n)
		}
	}
	return filled
}

// FindPassable returns the first passable cell in row-major order, or false
// when the grid has none.
func (g *TileGrid) FindPassable() (geom.Point, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y).IsPassable() {
				return geom.Point{X: x, Y: y}, true
			}
		}
	}
	return geom.Point{}, false
}

// IsConnected reports whether every passable cell is reachable from every
// other passable cell via 4-adjacency. An empty grid counts as connected.
func (g *TileGrid) IsConnected() bool {
	start, ok := g.FindPassable()
	if !ok {
		return true
	}
	filled := g.FloodFill(start, TileKind.IsPassable)
	return len(filled) == g.Count(TileKind.IsPassable)
}
