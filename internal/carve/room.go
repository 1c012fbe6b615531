package carve

import (
	"math/rand"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
)

// RoomShape classifies how a room footprint is stamped.
type RoomShape int

const (
	ShapeRect RoomShape = iota
	ShapePolygon
	ShapeCave
)

func (s RoomShape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapePolygon:
		return "polygon"
	case ShapeCave:
		return "cave"
	}
	return "unknown"
}

// Room is a placed footprint: the bounding rectangle, its shape class, and
// the merge flag maintained by the layout assembler.
type Room struct {
	Rect   geom.Rectangle
	Shape  RoomShape
	Merged bool
}

// ClassifyShape picks a room shape from the footprint size: very large
// footprints become caves, large ones polygons, the rest plain rectangles.
func ClassifyShape(r geom.Rectangle) RoomShape {
	if r.Width > 14 || r.Height > 14 {
		return ShapeCave
	}
	if r.Width > 9 || r.Height > 9 {
		return ShapePolygon
	}
	return ShapeRect
}

// StampRoom stamps the footprint onto the tile grid and returns the room
// record. Rectangular rooms get a WallRoom perimeter with Corner tiles at
// the four corners and Entry tiles at the wall midpoints; polygon and cave
// rooms get an irregular floor area with plain walls around it.
func StampRoom(tiles *grid.TileGrid, r geom.Rectangle, rng *rand.Rand) Room {
	shape := ClassifyShape(r)
	switch shape {
	case ShapeRect:
		stampRectRoom(tiles, r)
	case ShapePolygon:
		stampPolygonRoom(tiles, r, rng)
	case ShapeCave:
		stampCaveRoom(tiles, r, rng)
	}
	return Room{Rect: r, Shape: shape}
}

func stampRectRoom(tiles *grid.TileGrid, r geom.Rectangle) {
	// Interior first, perimeter over it.
	tiles.Fill(r, grid.TileFloor)

	for x := r.X; x < r.Right(); x++ {
		tiles.Set(x, r.Y, grid.TileWallRoom)
		tiles.Set(x, r.Bottom()-1, grid.TileWallRoom)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		tiles.Set(r.X, y, grid.TileWallRoom)
		tiles.Set(r.Right()-1, y, grid.TileWallRoom)
	}

	tiles.Set(r.X, r.Y, grid.TileCorner)
	tiles.Set(r.Right()-1, r.Y, grid.TileCorner)
	tiles.Set(r.X, r.Bottom()-1, grid.TileCorner)
	tiles.Set(r.Right()-1, r.Bottom()-1, grid.TileCorner)

	// Entry-eligible mid-wall tiles. A wall shorter than 3 has no interior
	// midpoint, so skip it.
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	if r.Width >= 3 {
		tiles.Set(cx, r.Y, grid.TileEntry)
		tiles.Set(cx, r.Bottom()-1, grid.TileEntry)
	}
	if r.Height >= 3 {
		tiles.Set(r.X, cy, grid.TileEntry)
		tiles.Set(r.Right()-1, cy, grid.TileEntry)
	}
}

// stampPolygonRoom carves an irregular convex-ish floor area by jittering
// the rectangle boundary inward and filling the resulting polygon.
func stampPolygonRoom(tiles *grid.TileGrid, r geom.Rectangle, rng *rand.Rand) {
	poly := geom.JitterPolygon(r.Inset(1), 8, rng)
	poly.Fill(func(x, y int) {
		tiles.Set(x, y, grid.TileFloor)
	})
}

// stampCaveRoom grows an organic blob from the footprint center until about
// sixty percent of the interior is open.
func stampCaveRoom(tiles *grid.TileGrid, r geom.Rectangle, rng *rand.Rand) {
	interior := r.Inset(1)
	mask := GrowCave(interior, 0.6, rng)
	mask.Rasterize(tiles)
}
