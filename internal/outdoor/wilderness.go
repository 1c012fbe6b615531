package outdoor

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/theme"
)

// maxDecomposeRounds bounds the recursive subtraction of overlapping
// layers; regions still overlapped after that many rounds are painted as
// they are.
const maxDecomposeRounds = 5

// maxRegionSide is the largest region painted in one piece; bigger regions
// are halved and recursed so blending stays local.
const maxRegionSide = 100

// Region is one layered terrain area of a wilderness zone. Higher layers
// win where regions overlap.
type Region struct {
	Rect    geom.Rectangle
	Layer   int
	Terrain string
}

// AssembleWilderness lays open ground over the whole footprint, derives a
// stack of layered terrain regions from the theme palette, and paints each
// terminal region with neighbor-aware blending plus scattered vegetation.
func AssembleWilderness(lay *grid.Layout, t *theme.Theme, rng *rand.Rand) {
	lay.Tiles.Fill(lay.Tiles.Bounds(), grid.TileFloor)

	regions := deriveRegions(lay.Tiles.Bounds(), t, rng)
	for i, r := range regions {
		paintRegion(lay, r, regions[i+1:], t, rng, 0)
	}
}

// deriveRegions builds the layer stack: a base region covering everything,
// then one overlapping region per extra floor terrain in the palette.
func deriveRegions(bounds geom.Rectangle, t *theme.Theme, rng *rand.Rand) []Region {
	regions := []Region{{Rect: bounds, Layer: 0, Terrain: t.FloorTerrains[0]}}
	for i, terrain := range t.FloorTerrains[1:] {
		w := bounds.Width/2 + rng.Intn(bounds.Width/2+1)
		h := bounds.Height/2 + rng.Intn(bounds.Height/2+1)
		x := bounds.X + rng.Intn(bounds.Width-w+1)
		y := bounds.Y + rng.Intn(bounds.Height-h+1)
		regions = append(regions, Region{
			Rect:    geom.Rectangle{X: x, Y: y, Width: w, Height: h},
			Layer:   i + 1,
			Terrain: terrain,
		})
	}
	return regions
}

// paintRegion recursively decomposes the region against higher layers and
// paints the terminal pieces. Oversized pieces are halved first so the
// recursion never paints more than maxRegionSide in one stroke.
func paintRegion(lay *grid.Layout, r Region, higher []Region, t *theme.Theme, rng *rand.Rand, round int) {
	if r.Rect.Width < 1 || r.Rect.Height < 1 {
		return
	}

	if round < maxDecomposeRounds {
		for i, h := range higher {
			if h.Layer <= r.Layer || !r.Rect.Intersects(h.Rect) {
				continue
			}
			// The higher layer wins the overlap; recurse on the remainder.
			for _, part := range r.Rect.Subtract(h.Rect) {
				paintRegion(lay, Region{Rect: part, Layer: r.Layer, Terrain: r.Terrain}, higher[i:], t, rng, round+1)
			}
			return
		}
	}

	if r.Rect.Width > maxRegionSide {
		left, right := halveWide(r.Rect)
		paintRegion(lay, Region{Rect: left, Layer: r.Layer, Terrain: r.Terrain}, higher, t, rng, round)
		paintRegion(lay, Region{Rect: right, Layer: r.Layer, Terrain: r.Terrain}, higher, t, rng, round)
		return
	}
	if r.Rect.Height > maxRegionSide {
		top, bottom := halveTall(r.Rect)
		paintRegion(lay, Region{Rect: top, Layer: r.Layer, Terrain: r.Terrain}, higher, t, rng, round)
		paintRegion(lay, Region{Rect: bottom, Layer: r.Layer, Terrain: r.Terrain}, higher, t, rng, round)
		return
	}

	paintTerminal(lay, r, t, rng)
}

func halveWide(r geom.Rectangle) (geom.Rectangle, geom.Rectangle) {
	half := r.Width / 2
	return geom.Rectangle{X: r.X, Y: r.Y, Width: half, Height: r.Height},
		geom.Rectangle{X: r.X + half, Y: r.Y, Width: r.Width - half, Height: r.Height}
}

func halveTall(r geom.Rectangle) (geom.Rectangle, geom.Rectangle) {
	half := r.Height / 2
	return geom.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: half},
		geom.Rectangle{X: r.X, Y: r.Y + half, Width: r.Width, Height: r.Height - half}
}

// paintTerminal paints one terminal region. Cells bordering terrain painted
// by an earlier region occasionally copy it, which blurs the straight seam
// between regions. Vegetation from the palette tail is sprinkled on top.
func paintTerminal(lay *grid.Layout, r Region, t *theme.Theme, rng *rand.Rand) {
	for y := r.Rect.Y; y < r.Rect.Bottom(); y++ {
		for x := r.Rect.X; x < r.Rect.Right(); x++ {
			terrain := r.Terrain
			if n := neighborTerrain(lay.Terrain, x, y); n != "" && n != terrain && rng.Intn(100) < 30 {
				terrain = n
			}
			lay.Terrain.SetTerrain(x, y, terrain)
		}
	}

	// Sprinkle vegetation over roughly two percent of the region.
	veg := t.FloorTerrains[len(t.FloorTerrains)-1]
	for i := 0; i < r.Rect.Area()/50; i++ {
		x := r.Rect.X + rng.Intn(r.Rect.Width)
		y := r.Rect.Y + rng.Intn(r.Rect.Height)
		lay.Terrain.SetTerrain(x, y, veg)
	}
}

// neighborTerrain returns the terrain of a painted orthogonal neighbor,
// preferring the west then north cell so scans blend against already
// painted ground.
func neighborTerrain(terrain *grid.TerrainGrid, x, y int) string {
	if c := terrain.Get(x-1, y); c != nil {
		return c.Terrain
	}
	if c := terrain.Get(x, y-1); c != nil {
		return c.Terrain
	}
	return ""
}
