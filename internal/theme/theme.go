// Package theme holds the declarative parameter sets that drive zone
// generation: layout family, dimension range, terrain palette, feature
// list, and creature/item density tables.
package theme

import (
	"fmt"

	"github.com/emberkeep/zoneforge/internal/dice"
)

// Feature describes one terrain overlay: a lake, river, patch, chunk, or
// stain of a given terrain and size. Density above 1.0 is an occurrence
// count scaled by the area ratio; at or below 1.0 it is a probability gate
// evaluated once.
type Feature struct {
	Kind    string  `yaml:"kind"`
	Terrain string  `yaml:"terrain"`
	Size    int     `yaml:"size"`
	Density float64 `yaml:"density"`
}

// SpawnEntry ties a creature or item id to a dice expression; the roll,
// scaled by the area ratio, decides how many markers are scattered.
type SpawnEntry struct {
	ID   string `yaml:"id"`
	Dice string `yaml:"dice"`
}

// Theme is the full declarative description of one zone style.
type Theme struct {
	Name    string `yaml:"name"`
	Family  string `yaml:"family"`
	MinSize int    `yaml:"min_size"`
	MaxSize int    `yaml:"max_size"`

	FloorTerrains []string `yaml:"floor_terrains"`
	WallTerrain   string   `yaml:"wall_terrain"`
	DoorTerrains  []string `yaml:"door_terrains"`

	// Room shape constraints for the rectangle-based families.
	MinRoomSide int     `yaml:"min_room_side"`
	MaxRoomSide int     `yaml:"max_room_side"`
	AspectRatio float64 `yaml:"aspect_ratio"`
	RoomCount   int     `yaml:"room_count"`

	Features  []Feature    `yaml:"features,omitempty"`
	Creatures []SpawnEntry `yaml:"creatures,omitempty"`
	Items     []SpawnEntry `yaml:"items,omitempty"`
}

// featureKinds are the overlay kinds the painter understands.
var featureKinds = map[string]bool{
	"lake":  true,
	"river": true,
	"patch": true,
	"chunk": true,
	"stain": true,
}

// Validate fails fast on malformed themes so bad entries never reach the
// generation loop. An unrecognized family is not an error; generation falls
// back to the sparse strategy for those.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing name")
	}
	if t.MinSize < 8 {
		return fmt.Errorf("theme %s: min_size %d below minimum 8", t.Name, t.MinSize)
	}
	if t.MaxSize < t.MinSize {
		return fmt.Errorf("theme %s: max_size %d below min_size %d", t.Name, t.MaxSize, t.MinSize)
	}
	if len(t.FloorTerrains) == 0 {
		return fmt.Errorf("theme %s: no floor terrains", t.Name)
	}
	if t.WallTerrain == "" {
		return fmt.Errorf("theme %s: missing wall terrain", t.Name)
	}
	if t.MinRoomSide < 3 {
		return fmt.Errorf("theme %s: min_room_side %d below minimum 3", t.Name, t.MinRoomSide)
	}
	if t.MaxRoomSide < t.MinRoomSide {
		return fmt.Errorf("theme %s: max_room_side %d below min_room_side %d", t.Name, t.MaxRoomSide, t.MinRoomSide)
	}
	if t.AspectRatio < 1 {
		return fmt.Errorf("theme %s: aspect_ratio %g must be at least 1", t.Name, t.AspectRatio)
	}
	if t.RoomCount < 1 {
		return fmt.Errorf("theme %s: room_count %d must be positive", t.Name, t.RoomCount)
	}
	for _, f := range t.Features {
		if !featureKinds[f.Kind] {
			return fmt.Errorf("theme %s: unknown feature kind %q", t.Name, f.Kind)
		}
		if f.Terrain == "" {
			return fmt.Errorf("theme %s: feature %s has no terrain", t.Name, f.Kind)
		}
		if f.Size < 1 {
			return fmt.Errorf("theme %s: feature %s size %d must be positive", t.Name, f.Kind, f.Size)
		}
		if f.Density <= 0 {
			return fmt.Errorf("theme %s: feature %s density %g must be positive", t.Name, f.Kind, f.Density)
		}
	}
	for _, e := range t.Creatures {
		if e.ID == "" || !dice.Valid(e.Dice) {
			return fmt.Errorf("theme %s: bad creature entry %q/%q", t.Name, e.ID, e.Dice)
		}
	}
	for _, e := range t.Items {
		if e.ID == "" || !dice.Valid(e.Dice) {
			return fmt.Errorf("theme %s: bad item entry %q/%q", t.Name, e.ID, e.Dice)
		}
	}
	return nil
}

// AverageArea returns the expected zone area for this theme, used to scale
// feature and population densities to the actual generated area.
func (t *Theme) AverageArea() int {
	side := (t.MinSize + t.MaxSize) / 2
	return side * side
}
