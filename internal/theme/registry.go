package theme

// builtin holds the stock theme definitions shipped with the engine.
// External theme files loaded from the themes directory are layered on top.
var builtin = map[string]*Theme{
	"catacombs": {
		Name:          "catacombs",
		Family:        "bsp",
		MinSize:       40,
		MaxSize:       64,
		FloorTerrains: []string{"stone_floor", "cracked_flagstone"},
		WallTerrain:   "stone_wall",
		DoorTerrains:  []string{"wooden_door", "iron_door"},
		MinRoomSide:   5,
		MaxRoomSide:   13,
		AspectRatio:   2.0,
		RoomCount:     24,
		Features: []Feature{
			{Kind: "patch", Terrain: "bone_pile", Size: 3, Density: 2.5},
			{Kind: "stain", Terrain: "mossy_wall", Size: 4, Density: 3.0},
		},
		Creatures: []SpawnEntry{
			{ID: "skeleton", Dice: "2d4"},
			{ID: "ghoul", Dice: "1d3"},
		},
		Items: []SpawnEntry{
			{ID: "bone_charm", Dice: "1d2"},
		},
	},
	"stronghold": {
		Name:          "stronghold",
		Family:        "packed",
		MinSize:       36,
		MaxSize:       56,
		FloorTerrains: []string{"flagstone"},
		WallTerrain:   "granite_wall",
		DoorTerrains:  []string{"oak_door"},
		MinRoomSide:   5,
		MaxRoomSide:   11,
		AspectRatio:   1.8,
		RoomCount:     18,
		Creatures: []SpawnEntry{
			{ID: "guard_construct", Dice: "1d4"},
		},
	},
	"caverns": {
		Name:          "caverns",
		Family:        "cave",
		MinSize:       32,
		MaxSize:       64,
		FloorTerrains: []string{"cave_floor", "gravel"},
		WallTerrain:   "cave_wall",
		DoorTerrains:  []string{"wooden_door"},
		MinRoomSide:   4,
		MaxRoomSide:   9,
		AspectRatio:   2.0,
		RoomCount:     8,
		Features: []Feature{
			{Kind: "lake", Terrain: "dark_water", Size: 7, Density: 1.8},
			{Kind: "chunk", Terrain: "crystal_vein", Size: 3, Density: 2.2},
		},
		Creatures: []SpawnEntry{
			{ID: "cave_bat", Dice: "3d4"},
			{ID: "slime", Dice: "1d6"},
		},
		Items: []SpawnEntry{
			{ID: "glow_fungus", Dice: "2d3"},
		},
	},
	"pits": {
		Name:          "pits",
		Family:        "pits",
		MinSize:       28,
		MaxSize:       48,
		FloorTerrains: []string{"ash_floor"},
		WallTerrain:   "scorched_wall",
		DoorTerrains:  []string{"iron_door"},
		MinRoomSide:   4,
		MaxRoomSide:   9,
		AspectRatio:   2.0,
		RoomCount:     6,
		Features: []Feature{
			{Kind: "lake", Terrain: "lava", Size: 5, Density: 0.6},
			{Kind: "stain", Terrain: "soot_wall", Size: 5, Density: 2.0},
		},
		Creatures: []SpawnEntry{
			{ID: "imp", Dice: "2d3"},
		},
	},
	"mines": {
		Name:          "mines",
		Family:        "mine",
		MinSize:       36,
		MaxSize:       72,
		FloorTerrains: []string{"mine_floor"},
		WallTerrain:   "rough_stone",
		DoorTerrains:  []string{"timber_door"},
		MinRoomSide:   4,
		MaxRoomSide:   9,
		AspectRatio:   2.5,
		RoomCount:     10,
		Features: []Feature{
			{Kind: "chunk", Terrain: "ore_vein", Size: 3, Density: 4.0},
			{Kind: "patch", Terrain: "timber_floor", Size: 4, Density: 1.5},
		},
		Creatures: []SpawnEntry{
			{ID: "kobold_miner", Dice: "2d4"},
		},
		Items: []SpawnEntry{
			{ID: "iron_nugget", Dice: "1d4"},
		},
	},
	"hedge_maze": {
		Name:          "hedge_maze",
		Family:        "maze",
		MinSize:       24,
		MaxSize:       48,
		FloorTerrains: []string{"grass_path"},
		WallTerrain:   "hedge",
		DoorTerrains:  []string{"gate"},
		MinRoomSide:   3,
		MaxRoomSide:   7,
		AspectRatio:   1.5,
		RoomCount:     4,
		Creatures: []SpawnEntry{
			{ID: "hedge_sprite", Dice: "1d4"},
		},
	},
	"warren": {
		Name:          "warren",
		Family:        "warren",
		MinSize:       30,
		MaxSize:       50,
		FloorTerrains: []string{"packed_earth"},
		WallTerrain:   "earth_wall",
		DoorTerrains:  []string{"burrow_gate"},
		MinRoomSide:   4,
		MaxRoomSide:   8,
		AspectRatio:   2.0,
		RoomCount:     16,
		Creatures: []SpawnEntry{
			{ID: "giant_rat", Dice: "3d3"},
		},
	},
	"town_small": {
		Name:          "town_small",
		Family:        "town",
		MinSize:       32,
		MaxSize:       48,
		FloorTerrains: []string{"cobblestone", "dirt_road"},
		WallTerrain:   "brick_wall",
		DoorTerrains:  []string{"house_door"},
		MinRoomSide:   5,
		MaxRoomSide:   9,
		AspectRatio:   1.6,
		RoomCount:     9,
		Creatures: []SpawnEntry{
			{ID: "villager", Dice: "2d4"},
		},
	},
	"wildwood": {
		Name:          "wildwood",
		Family:        "wilderness",
		MinSize:       48,
		MaxSize:       96,
		FloorTerrains: []string{"grass", "tall_grass", "forest_floor"},
		WallTerrain:   "rock_face",
		DoorTerrains:  []string{"gate"},
		MinRoomSide:   4,
		MaxRoomSide:   9,
		AspectRatio:   2.0,
		RoomCount:     6,
		Features: []Feature{
			{Kind: "lake", Terrain: "pond", Size: 6, Density: 1.2},
			{Kind: "river", Terrain: "stream", Size: 2, Density: 0.8},
		},
		Creatures: []SpawnEntry{
			{ID: "deer", Dice: "2d4"},
			{ID: "wolf", Dice: "1d4"},
		},
	},
}

// Get returns the named theme, or nil when unknown.
func Get(name string) *Theme {
	return builtin[name]
}

// Names returns the builtin theme names in arbitrary order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	return names
}
