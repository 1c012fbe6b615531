package server

import (
	"github.com/emberkeep/zoneforge/internal/grid"
	"github.com/emberkeep/zoneforge/internal/zone"
)

// Request ops understood by the daemon.
const (
	OpGenerate = "generate"
	OpThemes   = "themes"
	OpSave     = "save"
	OpLoad     = "load"
	OpList     = "list"
)

// Request is one client message. Fields beyond Op are read per operation:
// generate and save use Theme/Seed/Width/Height, save and load use Name.
type Request struct {
	Op     string `json:"op"`
	Theme  string `json:"theme,omitempty"`
	Seed   int64  `json:"seed,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Response answers one request. Error is set when OK is false; the remaining
// fields depend on the operation.
type Response struct {
	Op    string `json:"op"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	Report  *zone.Report  `json:"report,omitempty"`
	Tiles   string        `json:"tiles,omitempty"`
	Terrain []TerrainSpot `json:"terrain,omitempty"`
	Themes  []string      `json:"themes,omitempty"`
	Zones   []ZoneSummary `json:"zones,omitempty"`
}

// TerrainSpot is one painted cell in a response.
type TerrainSpot struct {
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Terrain string   `json:"terrain,omitempty"`
	Markers []string `json:"markers,omitempty"`
}

// ZoneSummary is one stored zone in a list response.
type ZoneSummary struct {
	Name        string `json:"name"`
	Theme       string `json:"theme"`
	Seed        int64  `json:"seed"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Fingerprint string `json:"fingerprint"`
}

func okResponse(req *Request) *Response {
	return &Response{Op: req.Op, OK: true}
}

func errorResponse(req *Request, msg string) *Response {
	return &Response{Op: req.Op, Error: msg}
}

func terrainSpots(lay *grid.Layout) []TerrainSpot {
	var spots []TerrainSpot
	lay.Terrain.Each(func(x, y int, c *grid.TerrainCell) {
		spots = append(spots, TerrainSpot{
			X:       x,
			Y:       y,
			Terrain: c.Terrain,
			Markers: append([]string(nil), c.Markers...),
		})
	})
	return spots
}
