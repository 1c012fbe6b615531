// Package packer produces candidate axis-aligned rectangles for room and
// building placement. Each strategy is a pure function of the bounds, the
// shape constraints, and an injected random source.
package packer

import (
	"math"
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
)

// Constraints bound the shape of produced rectangles: side lengths stay in
// [MinSide, MaxSide] and the aspect ratio never exceeds Ratio in either
// orientation.
type Constraints struct {
	MinSide int
	MaxSide int
	Ratio   float64
}

// placementRetries is how many random positions the sparse strategy tries
// per candidate before dropping it.
const placementRetries = 100

// randomShape draws a width/height pair satisfying the constraints.
func randomShape(c Constraints, rng *rand.Rand) (w, h int) {
	span := c.MaxSide - c.MinSide + 1
	for {
		w = c.MinSide + rng.Intn(span)
		h = c.MinSide + rng.Intn(span)
		if float64(w) <= c.Ratio*float64(h) && float64(h) <= c.Ratio*float64(w) {
			return w, h
		}
	}
}

// overlapsAny reports whether the candidate intersects any accepted rectangle.
func overlapsAny(r geom.Rectangle, accepted []geom.Rectangle) bool {
	for _, a := range accepted {
		if r.Intersects(a) {
			return true
		}
	}
	return false
}

// Sparse scatters up to count non-overlapping rectangles at uniformly random
// positions inside bounds. Count is an upper bound: a candidate that cannot
// find a free position within the retry budget is dropped.
func Sparse(bounds geom.Rectangle, c Constraints, count int, rng *rand.Rand) []geom.Rectangle {
	var accepted []geom.Rectangle
	for i := 0; i < count; i++ {
		w, h := randomShape(c, rng)
		if w > bounds.Width || h > bounds.Height {
			continue
		}
		for attempt := 0; attempt < placementRetries; attempt++ {
			x := bounds.X + rng.Intn(bounds.Width-w+1)
			y := bounds.Y + rng.Intn(bounds.Height-h+1)
			cand := geom.Rectangle{X: x, Y: y, Width: w, Height: h}
			if !overlapsAny(cand, accepted) {
				accepted = append(accepted, cand)
				break
			}
		}
	}
	return accepted
}

// Packed places up to count rectangles starting at the center of bounds,
// spiralling outward whenever the candidate collides with an accepted
// rectangle. A candidate that spirals out of bounds before finding a free
// spot is dropped.
func Packed(bounds geom.Rectangle, c Constraints, count int, rng *rand.Rand) []geom.Rectangle {
	var accepted []geom.Rectangle
	center := bounds.Center()

	for i := 0; i < count; i++ {
		w, h := randomShape(c, rng)
		if w > bounds.Width || h > bounds.Height {
			continue
		}

		maxAttempts := 9 * bounds.Width * bounds.Height
		for attempt := 0; attempt < maxAttempts; attempt++ {
			// Spiral step: radius and angle both grow with the attempt
			// counter so successive probes sweep outward from the center.
			angle := float64(attempt) * 0.5
			radius := float64(attempt) * 0.1
			x := center.X - w/2 + int(radius*math.Cos(angle))
			y := center.Y - h/2 + int(radius*math.Sin(angle))

			cand := geom.Rectangle{X: x, Y: y, Width: w, Height: h}
			if cand.X < bounds.X || cand.Y < bounds.Y ||
				cand.Right() > bounds.Right() || cand.Bottom() > bounds.Bottom() {
				// Drifted outside the area; give up on this candidate.
				break
			}
			if !overlapsAny(cand, accepted) {
				accepted = append(accepted, cand)
				break
			}
		}
	}
	return accepted
}

// BSP recursively splits bounds along its longer axis until no leaf exceeds
// MaxSide in either dimension. Splits always leave at least MinSide on both
// sides. The returned leaves exactly tile the input rectangle.
func BSP(bounds geom.Rectangle, c Constraints, rng *rand.Rand) []geom.Rectangle {
	var leaves []geom.Rectangle
	splitBSP(bounds, c, rng, &leaves)
	return leaves
}

func splitBSP(r geom.Rectangle, c Constraints, rng *rand.Rand, leaves *[]geom.Rectangle) {
	if r.Width <= c.MaxSide && r.Height <= c.MaxSide {
		*leaves = append(*leaves, r)
		return
	}

	// Split the longer axis. When the rectangle is too small to leave
	// MinSide on both sides it becomes a leaf even if oversized; this can
	// only happen when MaxSide < 2*MinSide.
	if r.Width >= r.Height {
		splitRange := r.Width - 2*c.MinSide
		if splitRange < 1 {
			*leaves = append(*leaves, r)
			return
		}
		at := c.MinSide + rng.Intn(splitRange)
		splitBSP(geom.Rectangle{X: r.X, Y: r.Y, Width: at, Height: r.Height}, c, rng, leaves)
		splitBSP(geom.Rectangle{X: r.X + at, Y: r.Y, Width: r.Width - at, Height: r.Height}, c, rng, leaves)
		return
	}

	splitRange := r.Height - 2*c.MinSide
	if splitRange < 1 {
		*leaves = append(*leaves, r)
		return
	}
	at := c.MinSide + rng.Intn(splitRange)
	splitBSP(geom.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: at}, c, rng, leaves)
	splitBSP(geom.Rectangle{X: r.X, Y: r.Y + at, Width: r.Width, Height: r.Height - at}, c, rng, leaves)
}
