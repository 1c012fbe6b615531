package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emberkeep/zoneforge/internal/store"
	"github.com/emberkeep/zoneforge/internal/theme"
	"github.com/emberkeep/zoneforge/internal/zone"
)

func main() {
	themeName := flag.String("theme", "catacombs", "Theme to generate")
	seed := flag.Int64("seed", 0, "Generation seed (default: current time)")
	width := flag.Int("width", 0, "Zone width (default: drawn from the theme's size range)")
	height := flag.Int("height", 0, "Zone height (default: drawn from the theme's size range)")
	themesDir := flag.String("themes", "themes", "Directory of custom theme YAML files")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	snapshotFile := flag.String("snapshot", "", "Write a YAML snapshot of the zone to this file")
	showReport := flag.Bool("report", false, "Print the generation report as YAML")
	listThemes := flag.Bool("list", false, "List available themes and exit")
	flag.Parse()

	loaded, err := theme.LoadDir(*themesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading themes: %v\n", err)
		os.Exit(1)
	}
	library := theme.NewLibrary(loaded)

	if *listThemes {
		for _, name := range library.Names() {
			fmt.Println(name)
		}
		return
	}

	t, err := library.Resolve(*themeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	lay, report := zone.Generate(t, *width, *height, *seed)

	var output strings.Builder
	output.WriteString(fmt.Sprintf("Zone: %s (seed %d, %dx%d)\n",
		report.Theme, report.Seed, report.Width, report.Height))
	output.WriteString(strings.Repeat("=", 40) + "\n")
	output.WriteString(lay.Tiles.Render())

	if *showReport {
		output.WriteString(strings.Repeat("=", 40) + "\n")
		data, err := yaml.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting report: %v\n", err)
			os.Exit(1)
		}
		output.Write(data)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(output.String())
	}

	if *snapshotFile != "" {
		if err := store.SaveSnapshot(lay, report, *snapshotFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
	}

	if report.Degraded() {
		fmt.Fprintf(os.Stderr,
			"Warning: degraded layout (placed %d/%d rooms, %d failed connections, %d cells pruned, %d spawns skipped)\n",
			report.PlacedRooms, report.RequestedRooms,
			report.FailedConnects, report.PrunedCells, report.SkippedSpawns)
	}
}
