package geom

import (
	"math"
	"math/rand"
)

// Polygon is a closed polygon over grid coordinates using float vertices so
// jittered shapes keep sub-cell detail until rasterization.
type Polygon []struct{ X, Y float64 }

// JitterPolygon builds an n-vertex polygon around the center of r, with each
// vertex placed at a randomly shortened radius toward the rectangle edge.
// The result approximates the rectangle with an irregular, organic outline.
func JitterPolygon(r Rectangle, n int, rng *rand.Rand) Polygon {
	if n < 3 {
		n = 3
	}
	cx := float64(r.X) + float64(r.Width)/2
	cy := float64(r.Y) + float64(r.Height)/2
	rx := float64(r.Width) / 2
	ry := float64(r.Height) / 2

	poly := make(Polygon, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		// Radius between 60% and 100% of the half extent.
		shrink := 0.6 + 0.4*rng.Float64()
		poly[i].X = cx + rx*shrink*math.Cos(angle)
		poly[i].Y = cy + ry*shrink*math.Sin(angle)
	}
	return poly
}

// Contains reports whether the point lies inside the polygon, using the
// even-odd ray casting rule.
func (p Polygon) Contains(x, y float64) bool {
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		vi, vj := p[i], p[j]
		if (vi.Y > y) != (vj.Y > y) &&
			x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// BoundingBox returns the smallest rectangle covering all vertices.
func (p Polygon) BoundingBox() Rectangle {
	if len(p) == 0 {
		return Rectangle{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, v := range p[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	x := int(math.Floor(minX))
	y := int(math.Floor(minY))
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  int(math.Ceil(maxX)) - x,
		Height: int(math.Ceil(maxY)) - y,
	}
}

// Fill invokes visit for every grid cell whose center lies inside the
// polygon, scanning the bounding box in row-major order.
func (p Polygon) Fill(visit func(x, y int)) {
	bb := p.BoundingBox()
	for y := bb.Y; y < bb.Bottom(); y++ {
		for x := bb.X; x < bb.Right(); x++ {
			if p.Contains(float64(x)+0.5, float64(y)+0.5) {
				visit(x, y)
			}
		}
	}
}
