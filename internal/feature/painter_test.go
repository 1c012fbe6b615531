package feature

import (
	"math/rand"
	"testing"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/theme"
)

// halfFloorLayout builds a layout whose left half is floor and right half
// stays wall, giving every filter something to accept and reject.
func halfFloorLayout(size int) *grid.Layout {
	lay := grid.NewLayout(size, size)
	lay.Tiles.Fill(geom.NewRectangle(0, 0, size/2, size), grid.TileFloor)
	return lay
}

func paintedCells(lay *grid.Layout) map[geom.Point]string {
	cells := make(map[geom.Point]string)
	lay.Terrain.Each(func(x, y int, c *grid.TerrainCell) {
		cells[geom.Point{X: x, Y: y}] = c.Terrain
	})
	return cells
}

func TestOccurrences(t *testing.T) {
	lay := halfFloorLayout(10)
	p := NewPainter(lay, rand.New(rand.NewSource(1)))

	// A density above 1.0 is a count scaled by the area ratio.
	if got := p.occurrences(3.0, 2.0); got != 6 {
		t.Errorf("occurrences(3.0, 2.0) = %d, expected 6", got)
	}
	if got := p.occurrences(2.0, 0.1); got != 1 {
		t.Errorf("occurrences(2.0, 0.1) = %d, expected the minimum of 1", got)
	}

	// A density at or below 1.0 gates a single occurrence.
	always, never := 0, 0
	for i := 0; i < 200; i++ {
		if p.occurrences(1.0, 5.0) != 1 {
			t.Fatal("density 1.0 should always fire once")
		}
		always++
		if p.occurrences(0.0, 5.0) != 0 {
			t.Fatal("density 0.0 should never fire")
		}
		never++
	}
	if always != 200 || never != 200 {
		t.Fatal("gate checks did not run")
	}
}

func TestPatchPaintsOnlyFloor(t *testing.T) {
	lay := halfFloorLayout(30)
	p := NewPainter(lay, rand.New(rand.NewSource(7)))
	p.Paint([]theme.Feature{{Kind: "patch", Terrain: "moss", Size: 12, Density: 5.0}}, 1.0)

	cells := paintedCells(lay)
	if len(cells) == 0 {
		t.Fatal("patch painted nothing")
	}
	for pt := range cells {
		if lay.Tiles.Get(pt.X, pt.Y) != grid.TileFloor {
			t.Errorf("patch painted non-floor cell (%d,%d)", pt.X, pt.Y)
		}
	}
}

func TestChunkPaintsOnlyWalls(t *testing.T) {
	lay := halfFloorLayout(30)
	p := NewPainter(lay, rand.New(rand.NewSource(7)))
	p.Paint([]theme.Feature{{Kind: "chunk", Terrain: "ore", Size: 12, Density: 5.0}}, 1.0)

	cells := paintedCells(lay)
	if len(cells) == 0 {
		t.Fatal("chunk painted nothing")
	}
	for pt := range cells {
		if !lay.Tiles.Get(pt.X, pt.Y).IsWallFamily() {
			t.Errorf("chunk painted non-wall cell (%d,%d)", pt.X, pt.Y)
		}
	}
}

func TestStainPaintsOnlyExposedWalls(t *testing.T) {
	lay := halfFloorLayout(30)
	p := NewPainter(lay, rand.New(rand.NewSource(7)))
	p.Paint([]theme.Feature{{Kind: "stain", Terrain: "slime", Size: 20, Density: 8.0}}, 1.0)

	for pt := range paintedCells(lay) {
		if !lay.Tiles.Get(pt.X, pt.Y).IsWallFamily() {
			t.Fatalf("stain painted non-wall cell (%d,%d)", pt.X, pt.Y)
		}
		exposed := false
		for _, dir := range geom.AllDirections() {
			dx, dy := dir.Delta()
			if lay.Tiles.Get(pt.X+dx, pt.Y+dy) == grid.TileFloor {
				exposed = true
			}
		}
		if !exposed {
			t.Fatalf("stain painted buried wall cell (%d,%d)", pt.X, pt.Y)
		}
	}
}

func TestLakeIgnoresTiles(t *testing.T) {
	lay := halfFloorLayout(30)
	p := NewPainter(lay, rand.New(rand.NewSource(3)))
	p.Paint([]theme.Feature{{Kind: "lake", Terrain: "water", Size: 20, Density: 2.0}}, 1.0)

	// A lake overwrites terrain on floor and wall alike; with a 20-wide
	// polygon over a half-floor layout some painted cells should land on
	// each side.
	onFloor, onWall := 0, 0
	for pt := range paintedCells(lay) {
		if lay.Tiles.Get(pt.X, pt.Y) == grid.TileFloor {
			onFloor++
		} else {
			onWall++
		}
	}
	if onFloor+onWall == 0 {
		t.Fatal("lake painted nothing")
	}
}

func TestRiverCrossesTheArea(t *testing.T) {
	lay := grid.NewLayout(24, 24)
	p := NewPainter(lay, rand.New(rand.NewSource(5)))
	p.Paint([]theme.Feature{{Kind: "river", Terrain: "water", Size: 3, Density: 2.0}}, 1.0)

	// The ribbon spans edge to edge, so it must touch at least one cell in
	// every column or every row.
	cols := make(map[int]bool)
	rows := make(map[int]bool)
	for pt := range paintedCells(lay) {
		cols[pt.X] = true
		rows[pt.Y] = true
	}
	if len(cols) != 24 && len(rows) != 24 {
		t.Errorf("river spans %d columns and %d rows, expected a full crossing", len(cols), len(rows))
	}
}

func TestPainterDeterministic(t *testing.T) {
	features := []theme.Feature{
		{Kind: "lake", Terrain: "water", Size: 10, Density: 2.0},
		{Kind: "patch", Terrain: "moss", Size: 6, Density: 0.8},
	}

	run := func() map[geom.Point]string {
		lay := halfFloorLayout(30)
		p := NewPainter(lay, rand.New(rand.NewSource(77)))
		p.Paint(features, 1.5)
		return paintedCells(lay)
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("same seed painted %d vs %d cells", len(a), len(b))
	}
	for pt, terrain := range a {
		if b[pt] != terrain {
			t.Fatalf("cell (%d,%d) differs: %q vs %q", pt.X, pt.Y, terrain, b[pt])
		}
	}
}
