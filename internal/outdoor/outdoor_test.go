package outdoor

import (
	"math/rand"
	"testing"

	"github.com/emberkeep/zoneforge/internal/geom"
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/theme"
)

func townTheme() *theme.Theme {
	return &theme.Theme{
		Name:          "town_small",
		Family:        "town",
		MinSize:       32,
		MaxSize:       48,
		FloorTerrains: []string{"cobblestone"},
		WallTerrain:   "brick_wall",
		DoorTerrains:  []string{"house_door"},
		MinRoomSide:   5,
		MaxRoomSide:   9,
		AspectRatio:   1.6,
		RoomCount:     8,
	}
}

func wildTheme() *theme.Theme {
	return &theme.Theme{
		Name:          "wildwood",
		Family:        "wilderness",
		MinSize:       48,
		MaxSize:       96,
		FloorTerrains: []string{"grass", "tall_grass", "forest_floor"},
		WallTerrain:   "rock_face",
		MinRoomSide:   4,
		MaxRoomSide:   9,
		AspectRatio:   2.0,
		RoomCount:     6,
	}
}

func TestAssembleTownBuildings(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		tiles := grid.NewTileGrid(40, 40)
		rng := rand.New(rand.NewSource(seed))
		res := AssembleTown(tiles, townTheme(), rng)

		if res.PlacedBuildings == 0 {
			t.Fatalf("seed %d placed no buildings", seed)
		}
		if res.PlacedBuildings > res.RequestedBuildings {
			t.Errorf("seed %d placed %d of %d requested",
				seed, res.PlacedBuildings, res.RequestedBuildings)
		}
		for i, b := range res.Buildings {
			for j := i + 1; j < len(res.Buildings); j++ {
				if b.Intersects(res.Buildings[j]) {
					t.Errorf("seed %d buildings %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestAssembleTownOneDoorPerBuilding(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		tiles := grid.NewTileGrid(40, 40)
		rng := rand.New(rand.NewSource(seed))
		res := AssembleTown(tiles, townTheme(), rng)

		for i, b := range res.Buildings {
			doors := 0
			for y := b.Y; y < b.Bottom(); y++ {
				for x := b.X; x < b.Right(); x++ {
					if tiles.Get(x, y).IsDoor() {
						doors++
					}
				}
			}
			if doors != 1 {
				t.Errorf("seed %d building %d has %d doors, expected exactly 1", seed, i, doors)
			}
		}
	}
}

func TestAssembleTownInteriorsReachable(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		tiles := grid.NewTileGrid(40, 40)
		rng := rand.New(rand.NewSource(seed))
		AssembleTown(tiles, townTheme(), rng)

		if !tiles.IsConnected() {
			t.Errorf("seed %d left an unreachable interior:\n%s", seed, tiles.Render())
		}
	}
}

func TestAssembleWildernessCoversEverything(t *testing.T) {
	lay := grid.NewLayout(60, 60)
	rng := rand.New(rand.NewSource(4))
	AssembleWilderness(lay, wildTheme(), rng)

	palette := map[string]bool{"grass": true, "tall_grass": true, "forest_floor": true}
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if lay.Tiles.Get(x, y) != grid.TileFloor {
				t.Fatalf("wilderness cell (%d,%d) is not open ground", x, y)
			}
			c := lay.Terrain.Get(x, y)
			if c == nil || c.Terrain == "" {
				t.Fatalf("cell (%d,%d) has no terrain", x, y)
			}
			if !palette[c.Terrain] {
				t.Fatalf("cell (%d,%d) has terrain %q outside the palette", x, y, c.Terrain)
			}
		}
	}
}

func TestAssembleWildernessUsesPalette(t *testing.T) {
	lay := grid.NewLayout(60, 60)
	rng := rand.New(rand.NewSource(4))
	AssembleWilderness(lay, wildTheme(), rng)

	seen := make(map[string]bool)
	lay.Terrain.Each(func(x, y int, c *grid.TerrainCell) {
		seen[c.Terrain] = true
	})
	for _, terrain := range wildTheme().FloorTerrains {
		if !seen[terrain] {
			t.Errorf("palette terrain %q never appears", terrain)
		}
	}
}

func TestDeriveRegionsLayering(t *testing.T) {
	bounds := geom.NewRectangle(0, 0, 50, 50)
	rng := rand.New(rand.NewSource(2))
	regions := deriveRegions(bounds, wildTheme(), rng)

	if len(regions) != 3 {
		t.Fatalf("derived %d regions for a 3-terrain palette, expected 3", len(regions))
	}
	if regions[0].Rect != bounds || regions[0].Layer != 0 {
		t.Error("first region must be the base layer covering the bounds")
	}
	for i, r := range regions[1:] {
		if r.Layer != i+1 {
			t.Errorf("region %d has layer %d, expected %d", i+1, r.Layer, i+1)
		}
		if r.Rect.X < 0 || r.Rect.Y < 0 ||
			r.Rect.Right() > bounds.Right() || r.Rect.Bottom() > bounds.Bottom() {
			t.Errorf("region %d escapes the bounds: %+v", i+1, r.Rect)
		}
	}
}

func TestAssembleWildernessDeterministic(t *testing.T) {
	run := func() []byte {
		lay := grid.NewLayout(50, 50)
		rng := rand.New(rand.NewSource(31))
		AssembleWilderness(lay, wildTheme(), rng)
		return lay.Terrain.Fingerprint()
	}
	if string(run()) != string(run()) {
		t.Error("same seed painted different wilderness terrain")
	}
}
