package carve

import (
	"math/rand"
	"testing"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
)

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name string
		rect geom.Rectangle
		want RoomShape
	}{
		{"small rect", geom.NewRectangle(0, 0, 5, 5), ShapeRect},
		{"edge of rect", geom.NewRectangle(0, 0, 9, 9), ShapeRect},
		{"polygon width", geom.NewRectangle(0, 0, 10, 5), ShapePolygon},
		{"polygon height", geom.NewRectangle(0, 0, 5, 12), ShapePolygon},
		{"edge of polygon", geom.NewRectangle(0, 0, 14, 14), ShapePolygon},
		{"cave width", geom.NewRectangle(0, 0, 15, 5), ShapeCave},
		{"cave both", geom.NewRectangle(0, 0, 20, 20), ShapeCave},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyShape(tt.rect); got != tt.want {
				t.Errorf("ClassifyShape(%dx%d) = %s, expected %s",
					tt.rect.Width, tt.rect.Height, got, tt.want)
			}
		})
	}
}

func TestStampRectRoom(t *testing.T) {
	tiles := grid.NewTileGrid(12, 12)
	r := geom.NewRectangle(2, 2, 7, 5)
	rng := rand.New(rand.NewSource(1))

	room := StampRoom(tiles, r, rng)
	if room.Shape != ShapeRect {
		t.Fatalf("shape = %s, expected rect", room.Shape)
	}

	// Corners.
	for _, p := range []geom.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 2, Y: 6}, {X: 8, Y: 6}} {
		if got := tiles.Get(p.X, p.Y); got != grid.TileCorner {
			t.Errorf("corner at (%d,%d) = %v, expected corner", p.X, p.Y, got)
		}
	}

	// Entry tiles at wall midpoints.
	if got := tiles.Get(5, 2); got != grid.TileEntry {
		t.Errorf("north midpoint = %v, expected entry", got)
	}
	if got := tiles.Get(2, 4); got != grid.TileEntry {
		t.Errorf("west midpoint = %v, expected entry", got)
	}

	// Interior is floor.
	for y := 3; y < 6; y++ {
		for x := 3; x < 8; x++ {
			if got := tiles.Get(x, y); got != grid.TileFloor {
				t.Errorf("interior (%d,%d) = %v, expected floor", x, y, got)
			}
		}
	}

	// Remaining perimeter is room wall.
	if got := tiles.Get(3, 2); got != grid.TileWallRoom {
		t.Errorf("perimeter (3,2) = %v, expected room wall", got)
	}
}

func TestStampPolygonRoomStaysInside(t *testing.T) {
	tiles := grid.NewTileGrid(20, 20)
	r := geom.NewRectangle(3, 3, 12, 10)
	rng := rand.New(rand.NewSource(5))

	room := StampRoom(tiles, r, rng)
	if room.Shape != ShapePolygon {
		t.Fatalf("shape = %s, expected polygon", room.Shape)
	}

	floor := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if tiles.Get(x, y) != grid.TileFloor {
				continue
			}
			floor++
			if !r.Inset(1).Contains(x, y) {
				t.Errorf("floor at (%d,%d) outside the room interior", x, y)
			}
		}
	}
	if floor == 0 {
		t.Error("polygon room carved no floor")
	}
}

func TestStampCaveRoomStaysInside(t *testing.T) {
	tiles := grid.NewTileGrid(30, 30)
	r := geom.NewRectangle(2, 2, 18, 16)
	rng := rand.New(rand.NewSource(5))

	room := StampRoom(tiles, r, rng)
	if room.Shape != ShapeCave {
		t.Fatalf("shape = %s, expected cave", room.Shape)
	}

	floor := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if tiles.Get(x, y) != grid.TileFloor {
				continue
			}
			floor++
			if !r.Inset(1).Contains(x, y) {
				t.Errorf("floor at (%d,%d) outside the cave interior", x, y)
			}
		}
	}
	if floor == 0 {
		t.Error("cave room carved no floor")
	}
}

func TestGrowCaveFillFraction(t *testing.T) {
	bounds := geom.NewRectangle(0, 0, 20, 20)
	rng := rand.New(rand.NewSource(9))

	mask := GrowCave(bounds, 0.5, rng)
	want := int(0.5 * float64(bounds.Area()))
	got := mask.Count()
	if got < want {
		t.Errorf("cave carved %d cells, expected at least %d", got, want)
	}
}

func TestGrowCaveConnected(t *testing.T) {
	bounds := geom.NewRectangle(0, 0, 16, 16)
	rng := rand.New(rand.NewSource(3))
	mask := GrowCave(bounds, 0.4, rng)

	tiles := grid.NewTileGrid(16, 16)
	mask.Rasterize(tiles)
	if !tiles.IsConnected() {
		t.Error("cave growth produced a disconnected blob")
	}
}

func TestCarveMazePassagesStayNarrow(t *testing.T) {
	bounds := geom.NewRectangle(0, 0, 25, 25)
	rng := rand.New(rand.NewSource(4))
	mask := CarveMaze(bounds, MazeOpen, 0.3, rng)

	if mask.Count() == 0 {
		t.Fatal("maze carved nothing")
	}

	// No open 2x2 block may exist in an open-style maze.
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			if mask.At(x, y) && mask.At(x+1, y) && mask.At(x, y+1) && mask.At(x+1, y+1) {
				t.Fatalf("open 2x2 block at (%d,%d)", x, y)
			}
		}
	}
}

func TestCarveMazeConnected(t *testing.T) {
	for _, style := range []MazeStyle{MazeOpen, MazeSquashed} {
		bounds := geom.NewRectangle(0, 0, 20, 20)
		rng := rand.New(rand.NewSource(8))
		mask := CarveMaze(bounds, style, 0.5, rng)

		tiles := grid.NewTileGrid(20, 20)
		mask.Rasterize(tiles)
		if !tiles.IsConnected() {
			t.Errorf("style %d produced a disconnected maze", style)
		}
	}
}

func TestOccupancyUnion(t *testing.T) {
	bounds := geom.NewRectangle(0, 0, 10, 10)
	a := NewOccupancy(bounds)
	b := NewOccupancy(bounds)
	a.Carve(1, 1)
	b.Carve(2, 2)

	a.Union(b)
	if !a.At(1, 1) || !a.At(2, 2) {
		t.Error("union lost carved cells")
	}
	if a.Count() != 2 {
		t.Errorf("union count = %d, expected 2", a.Count())
	}
}

func TestOccupancyRasterizeOnlyOpensFloor(t *testing.T) {
	bounds := geom.NewRectangle(0, 0, 5, 5)
	mask := NewOccupancy(bounds)
	mask.Carve(2, 2)

	tiles := grid.NewTileGrid(5, 5)
	mask.Rasterize(tiles)
	if tiles.Get(2, 2) != grid.TileFloor {
		t.Error("carved cell should rasterize to floor")
	}
	if tiles.Get(0, 0) != grid.TileWall {
		t.Error("uncarved cell should stay wall")
	}
}
