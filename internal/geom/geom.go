package geom

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Rectangle is an axis-aligned integer rectangle. It doubles as a room
// footprint and as a spatial query region.
type Rectangle struct {
	X, Y, Width, Height int
}

// NewRectangle creates a rectangle from an origin and dimensions.
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the first x coordinate past the right edge.
func (r Rectangle) Right() int {
	return r.X + r.Width
}

// Bottom returns the first y coordinate past the bottom edge.
func (r Rectangle) Bottom() int {
	return r.Y + r.Height
}

// Area returns the number of cells covered by the rectangle.
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// Center returns the integer center of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether the two rectangles share at least one cell.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersection returns the overlapping region of two rectangles and whether
// it is non-empty.
func (r Rectangle) Intersection(o Rectangle) (Rectangle, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rectangle{}, false
	}
	return Rectangle{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Inset returns the rectangle shrunk by n cells on every side. A rectangle
// too small to inset collapses to zero size at its center.
func (r Rectangle) Inset(n int) Rectangle {
	w := r.Width - 2*n
	h := r.Height - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rectangle{X: r.X + n, Y: r.Y + n, Width: w, Height: h}
}

// Subtract returns up to four rectangles covering the cells of r that are
// not covered by o. If the rectangles are disjoint, r is returned whole.
func (r Rectangle) Subtract(o Rectangle) []Rectangle {
	overlap, ok := r.Intersection(o)
	if !ok {
		return []Rectangle{r}
	}

	var parts []Rectangle
	// Band above the overlap.
	if overlap.Y > r.Y {
		parts = append(parts, Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: overlap.Y - r.Y})
	}
	// Band below the overlap.
	if overlap.Bottom() < r.Bottom() {
		parts = append(parts, Rectangle{X: r.X, Y: overlap.Bottom(), Width: r.Width, Height: r.Bottom() - overlap.Bottom()})
	}
	// Left and right slivers beside the overlap.
	if overlap.X > r.X {
		parts = append(parts, Rectangle{X: r.X, Y: overlap.Y, Width: overlap.X - r.X, Height: overlap.Height})
	}
	if overlap.Right() < r.Right() {
		parts = append(parts, Rectangle{X: overlap.Right(), Y: overlap.Y, Width: r.Right() - overlap.Right(), Height: overlap.Height})
	}
	return parts
}
