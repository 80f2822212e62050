package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBadProbability is returned when an extra-opening probability lies
// outside [0,1].
var ErrBadProbability = errors.New("probability must be within [0,1]")

// Generator carves mazes with an iterative DFS backtracker. All
// randomness comes from the injected rand.Rand, so the same source state
// and parameters produce the same grid.
type Generator struct {
	rows, cols    int
	extraOpenProb float64
	rng           *rand.Rand
}

// NewGenerator creates a generator for rows x cols grids. extraOpenProb
// is the chance that each interior wall left standing after carving is
// opened to create a loop; zero keeps a perfect maze.
func NewGenerator(rows, cols int, extraOpenProb float64, rng *rand.Rand) (*Generator, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}
	if extraOpenProb < 0 || extraOpenProb > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, extraOpenProb)
	}

	return &Generator{
		rows:          rows,
		cols:          cols,
		extraOpenProb: extraOpenProb,
		rng:           rng,
	}, nil
}

// Generate carves a fresh grid. The carving pass produces a spanning
// tree over all cells (exactly rows*cols-1 walls removed); the opening
// pass then removes extra walls per the configured probability. Walls
// are only ever removed.
func (g *Generator) Generate() (*Grid, error) {
	grid, err := NewGrid(g.rows, g.cols)
	if err != nil {
		return nil, err
	}

	g.carve(grid)
	g.openExtraWalls(grid)

	return grid, nil
}

// carve runs the DFS backtracker with an explicit stack. Each cell is
// pushed exactly once, so the walk visits every cell and removes one
// wall per cell after the first.
func (g *Generator) carve(grid *Grid) {
	start := Position{Row: 0, Col: 0}
	grid.cells[start.Row][start.Col].Visited = true
	stack := []Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		next, dir, ok := g.randomUnvisitedNeighbor(grid, current)
		if !ok {
			// Dead end, back up
			stack = stack[:len(stack)-1]
			continue
		}

		grid.removeWall(current, next, dir)
		grid.cells[next.Row][next.Col].Visited = true
		stack = append(stack, next)
	}
}

// randomUnvisitedNeighbor picks one unvisited neighbor of p uniformly at
// random, reporting false when none remain.
func (g *Generator) randomUnvisitedNeighbor(grid *Grid, p Position) (Position, Direction, bool) {
	var candidates []Direction
	for _, d := range AllDirections() {
		q := p.Move(d)
		if grid.InBounds(q) && !grid.cells[q.Row][q.Col].Visited {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return Position{}, North, false
	}

	dir := candidates[g.rng.Intn(len(candidates))]
	return p.Move(dir), dir, true
}

// openExtraWalls scans interior walls in row-major order and opens each
// one still standing with probability extraOpenProb. Scanning east and
// south sides only visits every interior wall exactly once.
func (g *Generator) openExtraWalls(grid *Grid) {
	if g.extraOpenProb <= 0 {
		return
	}

	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			p := Position{Row: r, Col: c}
			if c+1 < grid.cols && grid.cells[r][c].Walls[East] {
				if g.rng.Float64() < g.extraOpenProb {
					grid.removeWall(p, p.Move(East), East)
				}
			}
			if r+1 < grid.rows && grid.cells[r][c].Walls[South] {
				if g.rng.Float64() < g.extraOpenProb {
					grid.removeWall(p, p.Move(South), South)
				}
			}
		}
	}
}
