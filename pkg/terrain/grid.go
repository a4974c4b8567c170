// Package terrain provides the heightfield grid and the fractal generator
// that populates it.
package terrain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Grid errors.
var (
	ErrOutOfBounds = errors.New("grid index out of bounds")
	ErrInvalidSize = errors.New("invalid grid size")
)

// Classification is the terrain type of a cell.
type Classification uint8

// Classification constants.
const (
	Land Classification = iota
	Water
)

// String returns a human-readable classification name.
func (c Classification) String() string {
	switch c {
	case Land:
		return "Land"
	case Water:
		return "Water"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Cell is a single grid point.
type Cell struct {
	Elevation float32
	Class     Classification
}

// Grid is a square heightfield. Cells are stored row-major.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates a size x size grid of Land cells at elevation 0.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// index returns the slice index for (x, y).
// Panics if the coordinates are out of bounds.
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) in grid of size %d", ErrOutOfBounds, x, y, g.size))
	}
	return y*g.size + x
}

// Cell returns the cell at (x, y).
func (g *Grid) Cell(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Elevation returns the elevation at (x, y).
func (g *Grid) Elevation(x, y int) float32 {
	return g.cells[g.index(x, y)].Elevation
}

// SetElevation sets the elevation at (x, y).
func (g *Grid) SetElevation(x, y int, v float32) {
	g.cells[g.index(x, y)].Elevation = v
}

// Class returns the classification at (x, y).
func (g *Grid) Class(x, y int) Classification {
	return g.cells[g.index(x, y)].Class
}

// SetClass sets the classification at (x, y).
func (g *Grid) SetClass(x, y int, c Classification) {
	g.cells[g.index(x, y)].Class = c
}

// Slope returns a shading heuristic for the quad anchored at (x, y): the
// four corner elevations are sorted and abs(max - (min + 1)) is returned.
// It is not a physical gradient. Requires x+1 and y+1 to be in bounds.
func (g *Grid) Slope(x, y int) float32 {
	alts := []float32{
		g.Elevation(x, y),
		g.Elevation(x, y+1),
		g.Elevation(x+1, y+1),
		g.Elevation(x+1, y),
	}
	sort.Slice(alts, func(i, j int) bool { return alts[i] < alts[j] })
	return absf(alts[len(alts)-1] - (alts[0] + 1))
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Stats summarizes a grid.
type Stats struct {
	Land         int
	Water        int
	MinElevation float32
	MaxElevation float32
}

// Stats returns classification counts and the elevation range.
func (g *Grid) Stats() Stats {
	var s Stats
	if len(g.cells) == 0 {
		return s
	}

	s.MinElevation = g.cells[0].Elevation
	s.MaxElevation = g.cells[0].Elevation

	for _, c := range g.cells {
		switch c.Class {
		case Land:
			s.Land++
		case Water:
			s.Water++
		}
		if c.Elevation < s.MinElevation {
			s.MinElevation = c.Elevation
		}
		if c.Elevation > s.MaxElevation {
			s.MaxElevation = c.Elevation
		}
	}
	return s
}

// String renders the grid one row per line, cells separated by a space.
// Land cells print their truncated elevation, water cells print "w".
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := g.Cell(x, y)
			if c.Class == Water {
				sb.WriteByte('w')
			} else {
				sb.WriteString(strconv.Itoa(int(c.Elevation)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
