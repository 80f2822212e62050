package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mazebound/mazebound/internal/config"
	"github.com/mazebound/mazebound/internal/difficulty"
	"github.com/mazebound/mazebound/internal/game"
	"github.com/mazebound/mazebound/internal/logger"
	"github.com/mazebound/mazebound/internal/maze"
	"github.com/mazebound/mazebound/internal/results"
)

func main() {
	// Parse command-line flags
	difficultyFlag := flag.String("difficulty", "", "Maze difficulty: easy, medium, hard, very_hard (default: from config)")
	seed := flag.Int64("seed", 0, "Maze generation seed (default: random based on current time)")
	count := flag.Int("count", 1, "Number of mazes to generate (later mazes use seed+1, seed+2, ...)")
	show := flag.Bool("show", true, "Print each generated maze")
	solve := flag.Bool("solve", false, "Print the shortest path length from start to goal")
	simulate := flag.Bool("simulate", false, "Play the shortest path through a session and report the run")
	record := flag.Bool("record", false, "Record simulated runs in the results store (implies -simulate)")
	stats := flag.Bool("stats", false, "Print stored result statistics and exit")
	configFile := flag.String("config", "data/mazebound.yaml", "Path to config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting Mazebound")

	// Load configuration; flags override the file
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load config, using defaults", "path", *configFile, "error", err)
		cfg = config.DefaultConfig()
	}
	if *difficultyFlag != "" {
		cfg.Game.Difficulty = *difficultyFlag
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, err := cfg.Game.Level()
	if err != nil {
		log.Fatalf("Invalid difficulty: %v", err)
	}

	// Handle --stats flag (prints stored results and exits)
	if *stats {
		handleStats(cfg)
		return
	}

	// Use provided seed or generate from time
	mazeSeed := cfg.Game.Seed
	if mazeSeed == 0 {
		mazeSeed = time.Now().UnixNano()
		logger.Info("Maze seed selected", "seed", mazeSeed, "random", true)
	} else {
		logger.Info("Maze seed selected", "seed", mazeSeed, "random", false)
	}

	// Recording needs a finished session, so -record implies -simulate
	if *record {
		*simulate = true
	}

	var store *results.Store
	if *record {
		store, err = results.Open(cfg.Results)
		if err != nil {
			log.Fatalf("Failed to open results store: %v", err)
		}
		defer store.Close()
		logger.Info("Results store ready", "driver", cfg.Results.Driver)
	}

	settings, err := difficulty.SettingsFor(level)
	if err != nil {
		log.Fatalf("Failed to look up difficulty settings: %v", err)
	}

	for i := 0; i < *count; i++ {
		runSeed := mazeSeed + int64(i)

		fmt.Printf("Generating %dx%d maze (difficulty: %s, seed: %d)\n", settings.Rows, settings.Cols, level, runSeed)

		m, err := maze.Generate(level, runSeed)
		if err != nil {
			log.Fatalf("Failed to generate maze: %v", err)
		}

		fmt.Printf("Maze ready: %d cells, %d removed walls, %d dead ends\n",
			m.Grid.CellCount(), m.Grid.RemovedWallCount(), m.Grid.DeadEndCount())

		if *show {
			fmt.Println()
			fmt.Print(m.String())
			fmt.Println()
		}

		if *solve || *simulate {
			path, err := maze.ShortestPath(m.Grid, m.Start, m.Goal)
			if err != nil {
				log.Fatalf("Failed to solve maze: %v", err)
			}

			if *solve {
				fmt.Printf("Shortest path: %d moves (start %s, goal %s)\n", len(path)-1, m.Start, m.Goal)
			}

			if *simulate {
				if err := simulateRun(m, path, store); err != nil {
					log.Fatalf("Simulation failed: %v", err)
				}
			}
		}
	}
}

// simulateRun replays the solution path through a session, optionally
// recording the finished run.
func simulateRun(m *maze.Maze, path []maze.Position, store *results.Store) error {
	session := game.NewSession(m)

	for i := 1; i < len(path); i++ {
		d, ok := stepDirection(path[i-1], path[i])
		if !ok {
			return fmt.Errorf("no direction from %s to %s", path[i-1], path[i])
		}
		if !session.Move(d) {
			return fmt.Errorf("move %d (%s) was refused", i, d)
		}
	}

	snap := session.Snapshot()
	fmt.Printf("Simulated run: %d moves in %s (won: %v)\n", snap.Moves, game.FormatElapsed(snap.Elapsed), snap.Won)

	if store == nil {
		return nil
	}

	rows, cols := m.Grid.Dimensions()
	id, err := store.SaveResult(results.Result{
		Level:      snap.Level,
		GridRows:   rows,
		GridCols:   cols,
		Moves:      snap.Moves,
		DurationMS: snap.Elapsed.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	fmt.Printf("Recorded result #%d\n", id)

	return nil
}

// stepDirection returns the direction that moves from a to b.
func stepDirection(a, b maze.Position) (maze.Direction, bool) {
	for _, d := range maze.AllDirections() {
		if a.Move(d) == b {
			return d, true
		}
	}
	return maze.North, false
}

// handleStats prints stored result statistics and exits
func handleStats(cfg *config.Config) {
	store, err := results.Open(cfg.Results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open results store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	counts, err := store.CountByLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to count results: %v\n", err)
		os.Exit(1)
	}
	if len(counts) == 0 {
		fmt.Println("No recorded runs yet.")
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Printf("Recorded runs: %d\n", total)

	for _, level := range difficulty.Levels() {
		n := counts[level.String()]
		if n == 0 {
			continue
		}
		fmt.Printf("\n%s (%d runs)\n", level, n)

		best, err := store.BestResults(level.String(), 3)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to fetch best results: %v\n", err)
			os.Exit(1)
		}
		for i, r := range best {
			fmt.Printf("  %d. %d moves in %s (%s)\n", i+1, r.Moves,
				game.FormatElapsed(time.Duration(r.DurationMS)*time.Millisecond),
				r.FinishedAt.Format("2006-01-02 15:04"))
		}
	}
}
