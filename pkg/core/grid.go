package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

// Coord addresses a cell by row and column. Components may lie outside the
// grid; accessors wrap them toroidally.
type Coord struct {
	Row, Col int
}

// Grid stores binary cells in row-major order on a torus.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// Wrap normalizes c into the grid's row and column range.
func (g *Grid) Wrap(c Coord) Coord {
	return Coord{
		Row: (c.Row%g.H + g.H) % g.H,
		Col: (c.Col%g.W + g.W) % g.W,
	}
}

// Index returns the linear slice index for c after wrapping.
func (g *Grid) Index(c Coord) int {
	c = g.Wrap(c)
	return c.Row*g.W + c.Col
}

// Get returns the cell at c.
func (g *Grid) Get(c Coord) Cell { return g.data[g.Index(c)] }

// Set stores v at c.
func (g *Grid) Set(c Coord, v Cell) { g.data[g.Index(c)] = v }

// Neighbors returns the eight toroidal neighbors of c, row by row starting
// at the top-left.
func (g *Grid) Neighbors(c Coord) [8]Coord {
	var out [8]Coord
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[n] = g.Wrap(Coord{Row: c.Row + dr, Col: c.Col + dc})
			n++
		}
	}
	return out
}

// LiveNeighbors counts the live cells among the neighbors of c.
func (g *Grid) LiveNeighbors(c Coord) int {
	count := 0
	for _, nb := range g.Neighbors(c) {
		if g.data[nb.Row*g.W+nb.Col] == Live {
			count++
		}
	}
	return count
}

// CountLive returns the number of live cells.
func (g *Grid) CountLive() int {
	count := 0
	for _, c := range g.data {
		if c == Live {
			count++
		}
	}
	return count
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
