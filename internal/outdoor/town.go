// Package outdoor assembles the outdoor zone families: wilderness regions
// with layered terrain, and towns of packed building footprints.
package outdoor

import (
	"math/rand"
	"strings"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/packer"
	"github.com/emberkeep/zoneforge/internal/theme"
)

// TownResult reports how many building footprints were requested and how
// many the packer managed to place.
type TownResult struct {
	RequestedBuildings int
	PlacedBuildings    int
	Buildings          []geom.Rectangle
}

// AssembleTown lays open ground over the footprint, partitions it into
// building rectangles, and stamps each building with walls, a floor
// interior, and exactly one door at a wall-edge midpoint.
func AssembleTown(tiles *grid.TileGrid, t *theme.Theme, rng *rand.Rand) TownResult {
	// Streets and yards are open ground.
	tiles.Fill(tiles.Bounds(), grid.TileFloor)

	bounds := tiles.Bounds().Inset(1)
	c := packer.Constraints{
		MinSide: t.MinRoomSide,
		MaxSide: t.MaxRoomSide,
		Ratio:   t.AspectRatio,
	}

	var rects []geom.Rectangle
	requested := t.RoomCount
	switch townPacking(t.Name) {
	case "bsp":
		// Leaves tile the whole footprint; inset each so streets remain.
		for _, leaf := range packer.BSP(bounds, c, rng) {
			b := leaf.Inset(1)
			if b.Width >= 3 && b.Height >= 3 {
				rects = append(rects, b)
			}
		}
		requested = len(rects)
	case "packed":
		rects = packer.Packed(bounds, c, t.RoomCount, rng)
	default:
		rects = packer.Sparse(bounds, c, t.RoomCount, rng)
	}

	for _, r := range rects {
		stampBuilding(tiles, r)
	}
	// Doors go in after every wall is up, so a door never ends up facing a
	// neighbor stamped later.
	for _, r := range rects {
		carveDoor(tiles, r, rng)
	}

	return TownResult{
		RequestedBuildings: requested,
		PlacedBuildings:    len(rects),
		Buildings:          rects,
	}
}

// townPacking selects the partition strategy from the theme id.
func townPacking(name string) string {
	switch {
	case strings.Contains(name, "dense"):
		return "packed"
	case strings.Contains(name, "grid"):
		return "bsp"
	default:
		return "sparse"
	}
}

// stampBuilding draws a walled building with a floor interior.
func stampBuilding(tiles *grid.TileGrid, r geom.Rectangle) {
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
}

// carveDoor opens exactly one door at a wall-edge midpoint.
func carveDoor(tiles *grid.TileGrid, r geom.Rectangle, rng *rand.Rand) {
	// Pick a wall whose outward side is open ground, so the door never
	// opens into a neighboring building.
	walls := geom.AllDirections()
	rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })
	door := doorPosition(r, walls[0])
	for _, wall := range walls {
		p := doorPosition(r, wall)
		dx, dy := wall.Delta()
		if tiles.Get(p.X+dx, p.Y+dy).IsPassable() {
			door = p
			break
		}
	}
	tiles.Set(door.X, door.Y, grid.TileDoor)
}

// doorPosition returns the midpoint of the chosen wall.
func doorPosition(r geom.Rectangle, wall geom.Direction) geom.Point {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	switch wall {
	case geom.North:
		return geom.Point{X: cx, Y: r.Y}
	case geom.South:
		return geom.Point{X: cx, Y: r.Bottom() - 1}
	case geom.West:
		return geom.Point{X: r.X, Y: cy}
	default:
		return geom.Point{X: r.Right() - 1, Y: cy}
	}
}
