// Package wfc carves warren-style layouts: a coarse room graph grown by
// constraint collapse, then rasterized onto the tile grid as chambers and
// burrows.
package wfc

import "github.com/emberkeep/zoneforge/internal/geom"

// CellType classifies one cell of the coarse warren graph.
type CellType int

const (
	CellEmpty CellType = iota
	CellBurrow          // narrow passage, 2-4 connections
	CellChamber         // open chamber, 1-4 connections
	CellDen             // dead-end chamber, exactly 1 connection
)

func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellBurrow:
		return "burrow"
	case CellChamber:
		return "chamber"
	case CellDen:
		return "den"
	}
	return "unknown"
}

// maxConnections returns the connection cap for a cell type.
func (t CellType) maxConnections() int {
	switch t {
	case CellBurrow, CellChamber:
		return 4
	case CellDen:
		return 1
	}
	return 0
}

// Cell is one placed node of the warren graph with its open connections.
type Cell struct {
	Type        CellType
	X, Y        int
	Connections map[geom.Direction]bool
}

// NewCell creates a cell at the given coarse-grid position.
func NewCell(cellType CellType, x, y int) *Cell {
	return &Cell{
		Type:        cellType,
		X:           x,
		Y:           y,
		Connections: make(map[geom.Direction]bool),
	}
}

// ConnectionCount returns the number of open connections.
func (c *Cell) ConnectionCount() int {
	count := 0
	for _, connected := range c.Connections {
		if connected {
			count++
		}
	}
	return count
}
