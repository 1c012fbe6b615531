package grid

import (
	"fmt"
	"strings"

	"github.com/emberkeep/zoneforge/internal/geom"
)

// TileGrid is a fixed-size 2-D buffer of tile kinds. Dimensions are fixed at
// creation; every cell holds exactly one kind.
type TileGrid struct {
	width, height int
	cells         []TileKind
}

// NewTileGrid allocates a grid filled with TileWall.
func NewTileGrid(width, height int) *TileGrid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &TileGrid{
		width:  width,
		height: height,
		cells:  make([]TileKind, width*height),
	}
}

// Width returns the grid width.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height.
func (g *TileGrid) Height() int { return g.height }

// Bounds returns the full grid rectangle.
func (g *TileGrid) Bounds() geom.Rectangle {
	return geom.Rectangle{Width: g.width, Height: g.height}
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the kind at (x, y). Out-of-bounds reads return TileWall so
// callers probing past the edge see solid rock.
func (g *TileGrid) Get(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.cells[y*g.width+x]
}

// Set assigns the kind at (x, y). Out-of-bounds writes are dropped.
func (g *TileGrid) Set(x, y int, kind TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = kind
}

// Fill sets every cell inside the rectangle, clipped to the grid.
func (g *TileGrid) Fill(r geom.Rectangle, kind TileKind) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.Set(x, y, kind)
		}
	}
}

// Count returns the number of cells matching the predicate.
func (g *TileGrid) Count(match func(TileKind) bool) int {
	n := 0
	for _, k := range g.cells {
		if match(k) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *TileGrid) Clone() *TileGrid {
	out := NewTileGrid(g.width, g.height)
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *TileGrid) Equal(o *TileGrid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i, k := range g.cells {
		if o.cells[i] != k {
			return false
		}
	}
	return true
}

// tileRunes maps tile kinds to their ASCII rendering.
var tileRunes = map[TileKind]rune{
	TileWall:       '#',
	TileWallRoom:   '%',
	TileCorner:     '+',
	TileEntry:      '=',
	TileFloor:      '.',
	TileCorridor:   ',',
	TileDoor:       '/',
	TileDoorClosed: 'x',
	TileDoorLocked: 'X',
	TileTemp:       '?',
}

// runeTiles is the reverse of tileRunes, built once at init.
var runeTiles = func() map[rune]TileKind {
	m := make(map[rune]TileKind, len(tileRunes))
	for k, r := range tileRunes {
		m[r] = k
	}
	return m
}()

// Render returns an ASCII picture of the grid, one row per line.
func (g *TileGrid) Render() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, ok := tileRunes[g.Get(x, y)]
			if !ok {
				r = '?'
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseRender rebuilds a grid from the output of Render. Unknown runes come
// back as TileWall.
func ParseRender(s string) (*TileGrid, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty grid rendering")
	}
	width := len(lines[0])
	g := NewTileGrid(width, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("ragged grid rendering: row %d has %d cells, want %d", y, len(line), width)
		}
		for x, r := range line {
			if kind, ok := runeTiles[r]; ok {
				g.Set(x, y, kind)
			}
		}
	}
	return g, nil
}
