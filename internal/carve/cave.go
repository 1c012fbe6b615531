package carve

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
)

// GrowCave carves an organic open cavern inside bounds by randomized
// growth: starting from the center, already-carved cells repeatedly open a
// random uncarved neighbor until the fill fraction is reached. The result
// is always a single 4-connected blob.
func GrowCave(bounds geom.Rectangle, fill float64, rng *rand.Rand) *Occupancy {
	mask := NewOccupancy(bounds)
	if bounds.Width < 1 || bounds.Height < 1 {
		return mask
	}
	if fill <= 0 {
		return mask
	}
	if fill > 1 {
		fill = 1
	}

	target := int(float64(bounds.Area()) * fill)
	if target < 1 {
		target = 1
	}

	center := bounds.Center()
	mask.Carve(center.X, center.Y)
	carved := []geom.Point{center}

	// Growth stalls only when every carved cell is fully enclosed, which
	// cannot happen before the mask fills the bounds, so the attempt cap is
	// just a hard stop against pathological parameters.
	maxAttempts := bounds.Area() * 20
	for attempts := 0; len(carved) < target && attempts < maxAttempts; attempts++ {
		from := carved[rng.Intn(len(carved))]
		dir := geom.AllDirections()[rng.Intn(4)]
		dx, dy := dir.Delta()
		nx, ny := from.X+dx, from.Y+dy
		if !bounds.Contains(nx, ny) || mask.At(nx, ny) {
			continue
		}
		mask.Carve(nx, ny)
		carved = append(carved, geom.Point{X: nx, Y: ny})
	}
	return mask
}
