package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrGridTooSmall is returned when a grid cannot hold distinct start
	// and goal cells.
	ErrGridTooSmall = errors.New("grid too small for start/goal placement")

	// ErrNoGoalCandidate is returned when no cell lies far enough from
	// the chosen start. It only happens on disconnected grids.
	ErrNoGoalCandidate = errors.New("no goal candidate far enough from start")
)

// PlaceEndpoints picks a random start cell and a goal cell at least
// ceil(minFraction * eccentricity) steps away from it, where the
// eccentricity is the distance to the farthest cell reachable from the
// start. The goal is drawn uniformly from all qualifying cells, so it is
// never the start itself.
func PlaceEndpoints(g *Grid, minFraction float64, rng *rand.Rand) (start, goal Position, err error) {
	if g.CellCount() < 2 {
		return Position{}, Position{}, fmt.Errorf("placing on %dx%d grid: %w", g.rows, g.cols, ErrGridTooSmall)
	}

	start = Position{Row: rng.Intn(g.rows), Col: rng.Intn(g.cols)}

	dist, err := Distances(g, start)
	if err != nil {
		return Position{}, Position{}, err
	}

	ecc := Eccentricity(dist)
	if ecc == 0 {
		return Position{}, Position{}, fmt.Errorf("start %s is isolated: %w", start, ErrNoGoalCandidate)
	}

	threshold := int(math.Ceil(minFraction * float64(ecc)))
	if threshold < 1 {
		threshold = 1
	}

	// Row-major scan keeps the candidate order, and therefore the draw
	// below, reproducible for a given rng state.
	var candidates []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			if p == start {
				continue
			}
			if d, ok := dist[p]; ok && d >= threshold {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return Position{}, Position{}, fmt.Errorf("start %s, threshold %d: %w", start, threshold, ErrNoGoalCandidate)
	}

	goal = candidates[rng.Intn(len(candidates))]
	return start, goal, nil
}
