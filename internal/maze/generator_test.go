package maze

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewGeneratorValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := NewGenerator(0, 10, 0, rng); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("NewGenerator(0, 10) error = %v, want ErrBadDimensions", err)
	}
	if _, err := NewGenerator(10, 0, 0, rng); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("NewGenerator(10, 0) error = %v, want ErrBadDimensions", err)
	}
	if _, err := NewGenerator(10, 10, -0.1, rng); !errors.Is(err, ErrBadProbability) {
		t.Errorf("NewGenerator(prob=-0.1) error = %v, want ErrBadProbability", err)
	}
	if _, err := NewGenerator(10, 10, 1.1, rng); !errors.Is(err, ErrBadProbability) {
		t.Errorf("NewGenerator(prob=1.1) error = %v, want ErrBadProbability", err)
	}
}

// generateGrid carves a grid with a fresh source for the given seed.
func generateGrid(t *testing.T, rows, cols int, prob float64, seed int64) *Grid {
	t.Helper()

	gen, err := NewGenerator(rows, cols, prob, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	grid, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return grid
}

func TestGenerateSpanningTree(t *testing.T) {
	seeds := []int64{1, 42, 100, 255, 1000, 5000, 9999}

	for _, seed := range seeds {
		grid := generateGrid(t, 10, 10, 0, seed)

		// A spanning tree over n cells removes exactly n-1 walls
		want := grid.CellCount() - 1
		if got := grid.RemovedWallCount(); got != want {
			t.Errorf("Seed %d: RemovedWallCount() = %d, want %d", seed, got, want)
		}

		if !FullyConnected(grid) {
			t.Errorf("Seed %d: grid is not fully connected", seed)
		}
	}
}

func TestGenerateVisitsEveryCell(t *testing.T) {
	grid := generateGrid(t, 8, 12, 0, 7)

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if !grid.cells[r][c].Visited {
				t.Errorf("cell (%d,%d) was never carved", r, c)
			}
		}
	}
}

func TestGenerateConnectivityAcrossSizes(t *testing.T) {
	seeds := []int64{1, 42, 100, 255, 1000}
	sizes := []struct{ rows, cols int }{
		{10, 10},
		{20, 20},
		{30, 30},
		{40, 40},
		{5, 17},
	}
	probs := []float64{0, 0.05, 0.15, 0.30}

	for _, size := range sizes {
		for _, prob := range probs {
			for _, seed := range seeds {
				grid := generateGrid(t, size.rows, size.cols, prob, seed)

				if !FullyConnected(grid) {
					t.Errorf("%dx%d prob %v seed %d: not fully connected",
						size.rows, size.cols, prob, seed)
				}

				minRemoved := grid.CellCount() - 1
				if got := grid.RemovedWallCount(); got < minRemoved {
					t.Errorf("%dx%d prob %v seed %d: RemovedWallCount() = %d, want at least %d",
						size.rows, size.cols, prob, seed, got, minRemoved)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	seeds := []int64{1, 42, 9999}

	for _, seed := range seeds {
		a := generateGrid(t, 12, 12, 0.2, seed)
		b := generateGrid(t, 12, 12, 0.2, seed)

		if !sameWalls(a, b) {
			t.Errorf("Seed %d: two runs produced different grids", seed)
		}
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := generateGrid(t, 10, 10, 0, 1)
	b := generateGrid(t, 10, 10, 0, 2)

	if sameWalls(a, b) {
		t.Error("seeds 1 and 2 produced identical 10x10 grids")
	}
}

func TestOpenExtraWallsMonotonic(t *testing.T) {
	seeds := []int64{1, 42, 100, 255, 1000}

	// With the same seed the carving pass is identical, and every wall
	// opened at a lower probability is also opened at a higher one.
	for _, seed := range seeds {
		low := generateGrid(t, 15, 15, 0.05, seed)
		mid := generateGrid(t, 15, 15, 0.15, seed)
		high := generateGrid(t, 15, 15, 0.30, seed)

		if low.RemovedWallCount() > mid.RemovedWallCount() {
			t.Errorf("Seed %d: prob 0.05 removed %d walls, prob 0.15 removed %d",
				seed, low.RemovedWallCount(), mid.RemovedWallCount())
		}
		if mid.RemovedWallCount() > high.RemovedWallCount() {
			t.Errorf("Seed %d: prob 0.15 removed %d walls, prob 0.30 removed %d",
				seed, mid.RemovedWallCount(), high.RemovedWallCount())
		}
	}
}

func TestOpenExtraWallsNeverRestores(t *testing.T) {
	seeds := []int64{1, 42, 9999}

	for _, seed := range seeds {
		tree := generateGrid(t, 12, 12, 0, seed)
		braided := generateGrid(t, 12, 12, 0.30, seed)

		// Every passage of the spanning tree must survive braiding
		for r := 0; r < tree.Rows(); r++ {
			for c := 0; c < tree.Cols(); c++ {
				p := Position{Row: r, Col: c}
				treeWalls, _ := tree.WallsAt(p)
				braidedWalls, _ := braided.WallsAt(p)
				for _, d := range AllDirections() {
					if !treeWalls[d] && braidedWalls[d] {
						t.Errorf("Seed %d: wall %s of %s was restored by the opening pass", seed, d, p)
					}
				}
			}
		}
	}
}

func TestGenerateZeroProbabilityIsPerfect(t *testing.T) {
	grid := generateGrid(t, 40, 40, 0, 321)

	// Perfect maze: unique path between any two cells, so exactly n-1
	// removed walls and no cycles.
	if got, want := grid.RemovedWallCount(), grid.CellCount()-1; got != want {
		t.Errorf("RemovedWallCount() = %d, want %d", got, want)
	}
}

// sameWalls reports whether two grids have identical wall layouts.
func sameWalls(a, b *Grid) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			p := Position{Row: r, Col: c}
			wa, _ := a.WallsAt(p)
			wb, _ := b.WallsAt(p)
			if wa != wb {
				return false
			}
		}
	}
	return true
}
