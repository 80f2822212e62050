// Package maze implements rectangular wall mazes: the grid model, the
// carving generator, shortest-path solving, and start/goal placement.
package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimensions is returned when a grid dimension is less than 1.
	ErrBadDimensions = errors.New("grid dimensions must be at least 1x1")

	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Position identifies a cell by row and column, zero-indexed from the
// top-left corner.
type Position struct {
	Row, Col int
}

// Move returns the position one step away in the given direction. The
// result may lie outside the grid; callers check bounds.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single grid cell. A new cell starts with all four walls up.
type Cell struct {
	// Walls is indexed by Direction; true means the wall exists.
	Walls [4]bool

	// Visited is bookkeeping for the carving pass only.
	Visited bool
}

// Grid is a rectangular arrangement of cells. Walls between adjacent
// cells are kept in sync on both sides: for adjacent cells a and b,
// a.Walls[d] always equals b.Walls[d.Opposite()].
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// NewGrid creates a rows x cols grid with every wall present.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c].Walls = [4]bool{true, true, true, true}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Dimensions returns the grid size as (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int { return g.rows * g.cols }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// WallsAt returns a copy of the wall flags at p, indexed by Direction.
func (g *Grid) WallsAt(p Position) ([4]bool, error) {
	if !g.InBounds(p) {
		return [4]bool{}, fmt.Errorf("walls at %s: %w", p, ErrOutOfBounds)
	}
	return g.cells[p.Row][p.Col].Walls, nil
}

// RemoveWall removes the wall on p's d side together with the matching
// wall of the adjacent cell. Boundary walls cannot be removed.
func (g *Grid) RemoveWall(p Position, d Direction) error {
	if !g.InBounds(p) {
		return fmt.Errorf("remove wall at %s: %w", p, ErrOutOfBounds)
	}
	q := p.Move(d)
	if !g.InBounds(q) {
		return fmt.Errorf("remove %s wall at %s: neighbor %w", d, p, ErrOutOfBounds)
	}
	g.removeWall(p, q, d)
	return nil
}

// removeWall clears both sides of the wall between p and its neighbor q.
// Callers have already checked bounds.
func (g *Grid) removeWall(p, q Position, d Direction) {
	g.cells[p.Row][p.Col].Walls[d] = false
	g.cells[q.Row][q.Col].Walls[d.Opposite()] = false
}

// IsValidMove reports whether a step from p in direction d is possible.
// Positions outside the grid and walls both refuse the move; there is no
// error case.
func (g *Grid) IsValidMove(p Position, d Direction) bool {
	if !g.InBounds(p) {
		return false
	}
	if !g.InBounds(p.Move(d)) {
		return false
	}
	return !g.cells[p.Row][p.Col].Walls[d]
}

// OpenNeighbors returns the positions reachable from p in a single step.
func (g *Grid) OpenNeighbors(p Position) []Position {
	var open []Position
	for _, d := range AllDirections() {
		if g.IsValidMove(p, d) {
			open = append(open, p.Move(d))
		}
	}
	return open
}

// RemovedWallCount returns how many interior wall pairs have been
// removed, counting each shared wall once. A perfect maze over n cells
// has exactly n-1.
func (g *Grid) RemovedWallCount() int {
	count := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c+1 < g.cols && !g.cells[r][c].Walls[East] {
				count++
			}
			if r+1 < g.rows && !g.cells[r][c].Walls[South] {
				count++
			}
		}
	}
	return count
}

// DeadEndCount returns the number of cells with exactly one open side.
func (g *Grid) DeadEndCount() int {
	count := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			exits := 0
			for _, d := range AllDirections() {
				if !g.cells[r][c].Walls[d] {
					exits++
				}
			}
			if exits == 1 {
				count++
			}
		}
	}
	return count
}
