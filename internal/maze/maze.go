package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mazebound/mazebound/internal/difficulty"
	"github.com/mazebound/mazebound/internal/logger"
)

// ErrPlacementFailed is returned when no start/goal pair could be placed
// after exhausting all generation retries.
var ErrPlacementFailed = errors.New("start/goal placement failed")

const (
	// placementAttempts is how many start cells are tried per grid.
	placementAttempts = 10

	// generateAttempts is how many fresh grids are carved before giving up.
	generateAttempts = 5
)

// Maze is a generated labyrinth together with its start and goal cells.
type Maze struct {
	Grid  *Grid
	Start Position
	Goal  Position
	Level difficulty.Level

	// Seed is the value the run's rand source was built from. When the
	// caller passed 0, this holds the clock-derived replacement.
	Seed int64
}

// Generate builds a maze for the given difficulty level. A seed of 0 is
// replaced with the current time, so casual runs differ; the seed
// actually used is recorded on the returned Maze. The same level and
// non-zero seed always produce the same maze.
func Generate(level difficulty.Level, seed int64) (*Maze, error) {
	settings, err := difficulty.SettingsFor(level)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var lastErr error
	for attempt := 0; attempt < generateAttempts; attempt++ {
		gen, err := NewGenerator(settings.Rows, settings.Cols, settings.ExtraOpenProb, rng)
		if err != nil {
			return nil, err
		}
		grid, err := gen.Generate()
		if err != nil {
			return nil, err
		}

		for placement := 0; placement < placementAttempts; placement++ {
			start, goal, err := PlaceEndpoints(grid, settings.MinGoalFraction, rng)
			if err != nil {
				if errors.Is(err, ErrGridTooSmall) {
					return nil, err
				}
				logger.Debug("Placement attempt failed", "level", level.String(), "attempt", placement+1, "error", err)
				lastErr = err
				continue
			}

			logger.Debug("Maze generated",
				"level", level.String(),
				"rows", settings.Rows,
				"cols", settings.Cols,
				"start", start.String(),
				"goal", goal.String(),
				"attempt", attempt+1)
			return &Maze{
				Grid:  grid,
				Start: start,
				Goal:  goal,
				Level: level,
				Seed:  seed,
			}, nil
		}

		logger.Warning("Regenerating maze after failed placements", "level", level.String(), "grid", attempt+1)
	}

	return nil, fmt.Errorf("%w after %d generations: %v", ErrPlacementFailed, generateAttempts, lastErr)
}
