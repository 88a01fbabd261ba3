// Package plot tracks which garden cells hold a decoration.
package plot

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfBounds is returned for cells outside the grid.
	ErrOutOfBounds = errors.New("plot: cell out of bounds")
	// ErrOccupied is returned when the destination cell already holds an item.
	ErrOccupied = errors.New("plot: cell occupied")
	// ErrEmpty is returned when the source cell holds nothing.
	ErrEmpty = errors.New("plot: cell empty")
)

// Cell addresses one grid cell.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid maps between pixel space and cells. Cells are CellW by CellH pixels,
// with cell (0,0) whose top-left corner sits at (OriginX, OriginY).
type Grid struct {
	Cols, Rows       int
	CellW, CellH     float64
	OriginX, OriginY float64
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// CellAt returns the cell under the pixel (x, y).
func (g Grid) CellAt(x, y float64) (Cell, bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return Cell{}, false
	}
	c := Cell{
		Col: int(math.Floor((x - g.OriginX) / g.CellW)),
		Row: int(math.Floor((y - g.OriginY) / g.CellH)),
	}
	return c, g.Contains(c)
}

// CellCenter returns the pixel center of c.
func (g Grid) CellCenter(c Cell) (x, y float64) {
	return g.OriginX + (float64(c.Col)+0.5)*g.CellW,
		g.OriginY + (float64(c.Row)+0.5)*g.CellH
}

// Plot is a grid with at most one item per cell.
type Plot[T any] struct {
	Grid  Grid
	cells map[Cell]T
}

// New returns an empty plot over grid.
func New[T any](grid Grid) *Plot[T] {
	return &Plot[T]{Grid: grid, cells: make(map[Cell]T)}
}

// Place puts item in c.
func (p *Plot[T]) Place(c Cell, item T) error {
	if !p.Grid.Contains(c) {
		return fmt.Errorf("place %v: %w", c, ErrOutOfBounds)
	}
	if _, ok := p.cells[c]; ok {
		return fmt.Errorf("place %v: %w", c, ErrOccupied)
	}
	p.cells[c] = item
	return nil
}

// Move relocates the item in from to to. On error nothing changes, and the
// caller should return the item to from.
func (p *Plot[T]) Move(from, to Cell) error {
	item, ok := p.cells[from]
	if !ok {
		return fmt.Errorf("move %v: %w", from, ErrEmpty)
	}
	if from == to {
		return nil
	}
	if !p.Grid.Contains(to) {
		return fmt.Errorf("move %v to %v: %w", from, to, ErrOutOfBounds)
	}
	if _, ok := p.cells[to]; ok {
		return fmt.Errorf("move %v to %v: %w", from, to, ErrOccupied)
	}
	delete(p.cells, from)
	p.cells[to] = item
	return nil
}

// Remove takes the item out of c.
func (p *Plot[T]) Remove(c Cell) (T, bool) {
	item, ok := p.cells[c]
	if ok {
		delete(p.cells, c)
	}
	return item, ok
}

// At returns the item in c.
func (p *Plot[T]) At(c Cell) (T, bool) {
	item, ok := p.cells[c]
	return item, ok
}

// Len returns the number of occupied cells.
func (p *Plot[T]) Len() int {
	return len(p.cells)
}
