// Package zone is the top-level per-zone driver: it selects a base carve
// strategy from the theme family, runs the feature painter, and scatters
// creature and item markers from the theme's density tables.
package zone

import (
	"encoding/hex"
	"math/rand"

	"golang.org/x/crypto/blake2b"

	"github.com/emberkeep/zoneforge/internal/carve"
	"github.com/emberkeep/zoneforge/internal/dice"
	"github.com/emberkeep/zoneforge/internal/feature"
	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/layout"
	"github.com/emberkeep/zoneforge/internal/outdoor"
	"github.com/emberkeep/zoneforge/internal/packer"
	"github.com/emberkeep/zoneforge/internal/theme"
	"github.com/emberkeep/zoneforge/internal/wfc"
)

// spawnRetries caps the search for a free Floor cell per spawn occurrence.
// The original kept probing forever; a cap keeps worst-case runtime bounded
// and surfaces the miss in the report instead.
const spawnRetries = 256

// Generate runs the full pipeline for one zone. It is a pure function of
// the theme, the dimensions, and the seed: every random draw comes from a
// private source seeded here. Width or height of zero draws the dimension
// from the theme's size range. The theme must already be validated.
func Generate(t *theme.Theme, width, height int, seed int64) (*grid.Layout, *Report) {
	rng := rand.New(rand.NewSource(seed))

	if width <= 0 {
		width = t.MinSize + rng.Intn(t.MaxSize-t.MinSize+1)
	}
	if height <= 0 {
		height = t.MinSize + rng.Intn(t.MaxSize-t.MinSize+1)
	}

	lay := grid.NewLayout(width, height)
	report := &Report{
		Theme:  t.Name,
		Family: t.Family,
		Seed:   seed,
		Width:  width,
		Height: height,
	}

	carveBase(lay, t, rng, report)

	ratio := float64(width*height) / float64(t.AverageArea())

	paintBaseTerrain(lay, t, rng)
	feature.NewPainter(lay, rng).Paint(t.Features, ratio)
	populate(lay, t, ratio, rng, report)

	report.Fingerprint = fingerprint(lay)
	return lay, report
}

// carveBase dispatches the theme family to a base strategy. Unknown
// families fall back to the sparse dungeon rather than failing.
func carveBase(lay *grid.Layout, t *theme.Theme, rng *rand.Rand, report *Report) {
	tiles := lay.Tiles
	bounds := tiles.Bounds().Inset(1)

	switch t.Family {
	case "cave":
		carve.CarveMaze(bounds, carve.MazeSquashed, 0.5, rng).Rasterize(tiles)
		finishCarved(tiles, rng, report)
	case "pits":
		carve.GrowCave(bounds, 0.45, rng).Rasterize(tiles)
		finishCarved(tiles, rng, report)
	case "maze":
		carve.CarveMaze(bounds, carve.MazeOpen, 0.3, rng).Rasterize(tiles)
		finishCarved(tiles, rng, report)
	case "mine":
		// Squashed chambers with an open tunnel network over them.
		mask := carve.CarveMaze(bounds, carve.MazeSquashed, 0.5, rng)
		mask.Union(carve.CarveMaze(bounds, carve.MazeOpen, 0.1, rng))
		mask.Rasterize(tiles)
		finishCarved(tiles, rng, report)
	case "bsp":
		assemble(tiles, layout.FamilyBSP, t, rng, report)
	case "packed":
		assemble(tiles, layout.FamilyPacked, t, rng, report)
	case "warren":
		if wfc.Carve(tiles, t.RoomCount, t.RoomCount*3, rng) {
			finishCarved(tiles, rng, report)
			return
		}
		// Warren growth kept stalling; fall back to the sparse dungeon.
		assemble(tiles, layout.FamilySparse, t, rng, report)
	case "town":
		res := outdoor.AssembleTown(tiles, t, rng)
		report.RequestedRooms = res.RequestedBuildings
		report.PlacedRooms = res.PlacedBuildings
	case "wilderness":
		outdoor.AssembleWilderness(lay, t, rng)
	default:
		assemble(tiles, layout.FamilySparse, t, rng, report)
	}
}

func assemble(tiles *grid.TileGrid, family layout.Family, t *theme.Theme, rng *rand.Rand, report *Report) {
	res := layout.Assemble(tiles, family, packer.Constraints{
		MinSide: t.MinRoomSide,
		MaxSide: t.MaxRoomSide,
		Ratio:   t.AspectRatio,
	}, t.RoomCount, rng)

	report.RequestedRooms = res.RequestedRooms
	report.PlacedRooms = res.PlacedRooms
	report.MergedRooms = res.MergedRooms
	report.FailedConnects = res.FailedConnects
	report.PrunedCells = res.PrunedCells
}

// finishCarved runs the repair passes over a mask-carved layout. Growth
// from a single seed is connected by construction, but unions of masks are
// not, and the repair passes also normalize stray walls.
func finishCarved(tiles *grid.TileGrid, rng *rand.Rand, report *Report) {
	report.PrunedCells = layout.Cleanup(tiles, rng, nil)
}

// paintBaseTerrain assigns a terrain id to every structural cell: passable
// cells draw from the floor set, doors from the door set, and walls that
// border the open area get the wall terrain. Fully buried wall cells stay
// unpainted, and cells the base strategy already painted (wilderness
// regions) are left alone.
func paintBaseTerrain(lay *grid.Layout, t *theme.Theme, rng *rand.Rand) {
	for y := 0; y < lay.Tiles.Height(); y++ {
		for x := 0; x < lay.Tiles.Width(); x++ {
			if lay.Terrain.Get(x, y) != nil {
				continue
			}
			kind := lay.Tiles.Get(x, y)
			switch {
			case kind.IsDoor():
				lay.Terrain.SetTerrain(x, y, pick(t.DoorTerrains, rng))
			case kind.IsPassable():
				lay.Terrain.SetTerrain(x, y, pick(t.FloorTerrains, rng))
			case kind.IsWallFamily() && exposed(lay.Tiles, x, y):
				lay.Terrain.SetTerrain(x, y, t.WallTerrain)
			}
		}
	}
}

func pick(options []string, rng *rand.Rand) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}

func exposed(tiles *grid.TileGrid, x, y int) bool {
	for _, dir := range geom.AllDirections() {
		dx, dy := dir.Delta()
		if tiles.Get(x+dx, y+dy).IsPassable() {
			return true
		}
	}
	return false
}

// populate scatters creature and item markers over random Floor cells. The
// count for each entry is its dice roll scaled by the area ratio.
func populate(lay *grid.Layout, t *theme.Theme, ratio float64, rng *rand.Rand, report *Report) {
	roller := dice.NewRoller(rng)

	for _, entry := range t.Creatures {
		n := scaledRoll(roller, entry.Dice, ratio)
		for i := 0; i < n; i++ {
			if p, ok := randomFloor(lay.Tiles, rng); ok {
				lay.Terrain.AddMarker(p.X, p.Y, grid.CreatureMarker(entry.ID))
				report.CreaturesPlaced++
			} else {
				report.SkippedSpawns++
			}
		}
	}
	for _, entry := range t.Items {
		n := scaledRoll(roller, entry.Dice, ratio)
		for i := 0; i < n; i++ {
			if p, ok := randomFloor(lay.Tiles, rng); ok {
				lay.Terrain.AddMarker(p.X, p.Y, grid.ItemMarker(entry.ID))
				report.ItemsPlaced++
			} else {
				report.SkippedSpawns++
			}
		}
	}
}

func scaledRoll(roller *dice.Roller, notation string, ratio float64) int {
	return int(float64(roller.RollNotation(notation))*ratio + 0.5)
}

func randomFloor(tiles *grid.TileGrid, rng *rand.Rand) (geom.Point, bool) {
	for attempt := 0; attempt < spawnRetries; attempt++ {
		x := rng.Intn(tiles.Width())
		y := rng.Intn(tiles.Height())
		if tiles.Get(x, y) == grid.TileFloor {
			return geom.Point{X: x, Y: y}, true
		}
	}
	return geom.Point{}, false
}

// fingerprint hashes the finished grids into a stable hex digest.
func fingerprint(lay *grid.Layout) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails on a bad key; nil key cannot fail.
		panic(err)
	}
	h.Write([]byte(lay.Tiles.Render()))
	h.Write(lay.Terrain.Fingerprint())
	return hex.EncodeToString(h.Sum(nil))
}
