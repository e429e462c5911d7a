package model

import (
	"cmp"
	"crypto/md5"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Cell is a single grid coordinate
type Cell struct {
	X, Y int
}

// Generation is a sparse set of live cells. Membership implies life.
type Generation struct {
	cells map[Cell]struct{}
}

// NewGeneration creates a generation holding the given cells
func NewGeneration(cells ...Cell) *Generation {
	g := &Generation{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		g.cells[c] = struct{}{}
	}
	return g
}

// BuildGeneration creates a generation from an explicit list of cells
func BuildGeneration(cells []Cell) *Generation {
	return NewGeneration(cells...)
}

// Contains returns true if (x, y) is alive
func (g *Generation) Contains(x, y int) bool {
	_, ok := g.cells[Cell{X: x, Y: y}]
	return ok
}

// Add marks (x, y) as alive
func (g *Generation) Add(x, y int) {
	if g.cells == nil {
		g.cells = make(map[Cell]struct{})
	}
	g.cells[Cell{X: x, Y: y}] = struct{}{}
}

// Len returns the number of living cells
func (g *Generation) Len() int {
	return len(g.cells)
}

// All iterates over the living cells in no particular order
func (g *Generation) All() iter.Seq[Cell] {
	return maps.Keys(g.cells)
}

// Cells returns the living cells in no particular order
func (g *Generation) Cells() []Cell {
	return slices.Collect(g.All())
}

// Equal reports whether both generations hold the same cells
func (g *Generation) Equal(other *Generation) bool {
	if g.Len() != other.Len() {
		return false
	}
	for c := range g.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Reset empties the generation so it can be reused as an accumulator
func (g *Generation) Reset() {
	clear(g.cells)
}

// Hash returns an MD5 digest of the live set, independent of insertion order
func (g *Generation) Hash() string {
	sorted := g.Cells()
	slices.SortFunc(sorted, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	h := md5.New()
	for _, c := range sorted {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// merge copies every cell of other into g
func (g *Generation) merge(other *Generation) {
	if g.cells == nil {
		g.cells = make(map[Cell]struct{}, other.Len())
	}
	maps.Copy(g.cells, other.cells)
}
