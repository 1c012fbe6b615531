package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/zone"
)

// Snapshot is the serialized form of a finished zone. Tiles are stored as
// the ASCII rendering; terrain is stored sparsely since most cells carry
// none.
type Snapshot struct {
	SavedAt time.Time     `yaml:"saved_at"`
	Report  zone.Report   `yaml:"report"`
	Tiles   string        `yaml:"tiles"`
	Terrain []TerrainSpot `yaml:"terrain,omitempty"`
}

// TerrainSpot is one painted terrain cell at an explicit coordinate.
type TerrainSpot struct {
	X       int      `yaml:"x"`
	Y       int      `yaml:"y"`
	Terrain string   `yaml:"terrain,omitempty"`
	Markers []string `yaml:"markers,omitempty"`
}

// NewSnapshot captures a layout and its report into serializable form.
func NewSnapshot(lay *grid.Layout, report *zone.Report) *Snapshot {
	snap := &Snapshot{
		SavedAt: time.Now(),
		Report:  *report,
		Tiles:   lay.Tiles.Render(),
	}
	lay.Terrain.Each(func(x, y int, c *grid.TerrainCell) {
		snap.Terrain = append(snap.Terrain, TerrainSpot{
			X:       x,
			Y:       y,
			Terrain: c.Terrain,
			Markers: append([]string(nil), c.Markers...),
		})
	})
	return snap
}

// Layout rebuilds the grids from the snapshot.
func (s *Snapshot) Layout() (*grid.Layout, error) {
	tiles, err := grid.ParseRender(s.Tiles)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tile rendering: %w", err)
	}
	terrain := grid.NewTerrainGrid(tiles.Width(), tiles.Height())
	for _, spot := range s.Terrain {
		if spot.Terrain != "" {
			terrain.SetTerrain(spot.X, spot.Y, spot.Terrain)
		}
		for _, m := range spot.Markers {
			terrain.AddMarker(spot.X, spot.Y, m)
		}
	}
	return &grid.Layout{Tiles: tiles, Terrain: terrain}, nil
}

// SaveSnapshot writes a zone snapshot to a YAML file.
func SaveSnapshot(lay *grid.Layout, report *zone.Report, filename string) error {
	data, err := yaml.Marshal(NewSnapshot(lay, report))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

// LoadSnapshot reads a zone snapshot from a YAML file.
func LoadSnapshot(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	return &snap, nil
}
