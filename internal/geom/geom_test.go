package geom

import (
	"math/rand"
	"testing"
)

func TestRectangleBasics(t *testing.T) {
	r := NewRectangle(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
	if r.Area() != 50 {
		t.Errorf("Area() = %d, expected 50", r.Area())
	}
	c := r.Center()
	if c.X != 7 || c.Y != 5 {
		t.Errorf("Center() = (%d,%d), expected (7,5)", c.X, c.Y)
	}
}

func TestRectangleContains(t *testing.T) {
	r := NewRectangle(0, 0, 4, 4)
	if !r.Contains(0, 0) {
		t.Error("expected (0,0) inside")
	}
	if !r.Contains(3, 3) {
		t.Error("expected (3,3) inside")
	}
	if r.Contains(4, 0) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(-1, 2) {
		t.Error("expected (-1,2) outside")
	}
}

func TestRectangleIntersects(t *testing.T) {
	a := NewRectangle(0, 0, 5, 5)
	tests := []struct {
		name string
		b    Rectangle
		want bool
	}{
		{"overlapping", NewRectangle(3, 3, 5, 5), true},
		{"contained", NewRectangle(1, 1, 2, 2), true},
		{"edge-adjacent", NewRectangle(5, 0, 3, 3), false},
		{"disjoint", NewRectangle(10, 10, 2, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectangleIntersection(t *testing.T) {
	a := NewRectangle(0, 0, 5, 5)
	b := NewRectangle(3, 2, 5, 5)
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	want := NewRectangle(3, 2, 2, 3)
	if got != want {
		t.Errorf("Intersection = %+v, expected %+v", got, want)
	}

	if _, ok := a.Intersection(NewRectangle(20, 20, 2, 2)); ok {
		t.Error("disjoint rectangles should not intersect")
	}
}

func TestRectangleInset(t *testing.T) {
	r := NewRectangle(0, 0, 10, 8).Inset(2)
	want := NewRectangle(2, 2, 6, 4)
	if r != want {
		t.Errorf("Inset(2) = %+v, expected %+v", r, want)
	}
}

func TestRectangleSubtract(t *testing.T) {
	base := NewRectangle(0, 0, 10, 10)
	hole := NewRectangle(3, 3, 4, 4)
	parts := base.Subtract(hole)

	// The parts must tile base minus hole exactly: disjoint, inside base,
	// never touching the hole, and with matching total area.
	total := 0
	for i, p := range parts {
		total += p.Area()
		if p.Intersects(hole) {
			t.Errorf("part %d intersects the subtracted region", i)
		}
		for j := i + 1; j < len(parts); j++ {
			if p.Intersects(parts[j]) {
				t.Errorf("parts %d and %d overlap", i, j)
			}
		}
	}
	if want := base.Area() - hole.Area(); total != want {
		t.Errorf("subtracted parts cover %d cells, expected %d", total, want)
	}
}

func TestRectangleSubtractDisjoint(t *testing.T) {
	base := NewRectangle(0, 0, 5, 5)
	parts := base.Subtract(NewRectangle(20, 20, 3, 3))
	if len(parts) != 1 || parts[0] != base {
		t.Errorf("subtracting a disjoint rectangle should return the base, got %+v", parts)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s delta does not cancel its opposite", d)
		}
	}
}

func TestJitterPolygonStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := NewRectangle(5, 5, 20, 14)

	for trial := 0; trial < 20; trial++ {
		poly := JitterPolygon(bounds, 8, rng)
		if len(poly) != 8 {
			t.Fatalf("polygon has %d vertices, expected 8", len(poly))
		}
		box := poly.BoundingBox()
		if box.X < bounds.X || box.Y < bounds.Y ||
			box.Right() > bounds.Right() || box.Bottom() > bounds.Bottom() {
			t.Fatalf("polygon bounding box %+v escapes %+v", box, bounds)
		}
	}
}

func TestPolygonBoundingBoxIsTight(t *testing.T) {
	// A square with known extents must bound exactly, with no padding ring:
	// a cell at ceil(maxX) has center > maxX and can never be filled.
	poly := Polygon{{2, 3}, {9, 3}, {9, 8}, {2, 8}}
	box := poly.BoundingBox()
	want := NewRectangle(2, 3, 7, 5)
	if box != want {
		t.Errorf("bounding box = %+v, expected %+v", box, want)
	}
	poly.Fill(func(x, y int) {
		if x >= 9 || y >= 8 {
			t.Errorf("filled cell (%d,%d) past the polygon extent", x, y)
		}
	})
}

func TestPolygonFillInsideBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bounds := NewRectangle(0, 0, 16, 16)
	poly := JitterPolygon(bounds, 8, rng)
	box := poly.BoundingBox()

	count := 0
	poly.Fill(func(x, y int) {
		count++
		if !box.Contains(x, y) {
			t.Fatalf("filled cell (%d,%d) outside bounding box %+v", x, y, box)
		}
	})
	if count == 0 {
		t.Error("expected the polygon to cover at least one cell")
	}
}

func TestPolygonFillDeterministic(t *testing.T) {
	collect := func(seed int64) []Point {
		rng := rand.New(rand.NewSource(seed))
		poly := JitterPolygon(NewRectangle(0, 0, 12, 12), 8, rng)
		var cells []Point
		poly.Fill(func(x, y int) {
			cells = append(cells, Point{X: x, Y: y})
		})
		return cells
	}

	a := collect(99)
	b := collect(99)
	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}
