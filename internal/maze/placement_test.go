package maze

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestPlaceEndpointsMinimumDistance(t *testing.T) {
	seeds := []int64{1, 42, 100, 255, 1000, 5000, 9999}

	for _, seed := range seeds {
		rng := rand.New(rand.NewSource(seed))
		grid := generateGrid(t, 20, 20, 0.15, seed)

		start, goal, err := PlaceEndpoints(grid, 0.6, rng)
		if err != nil {
			t.Fatalf("Seed %d: PlaceEndpoints failed: %v", seed, err)
		}

		if start == goal {
			t.Errorf("Seed %d: start and goal are both %s", seed, start)
		}

		dist, err := Distances(grid, start)
		if err != nil {
			t.Fatalf("Seed %d: Distances failed: %v", seed, err)
		}

		ecc := Eccentricity(dist)
		threshold := int(math.Ceil(0.6 * float64(ecc)))
		goalDist, ok := dist[goal]
		if !ok {
			t.Fatalf("Seed %d: goal %s not reachable from start %s", seed, goal, start)
		}
		if goalDist < threshold {
			t.Errorf("Seed %d: goal distance %d below threshold %d (eccentricity %d)",
				seed, goalDist, threshold, ecc)
		}
	}
}

func TestPlaceEndpointsDeterministic(t *testing.T) {
	grid := generateGrid(t, 10, 10, 0, 5)

	s1, g1, err := PlaceEndpoints(grid, 0.6, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("PlaceEndpoints failed: %v", err)
	}
	s2, g2, err := PlaceEndpoints(grid, 0.6, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("PlaceEndpoints failed: %v", err)
	}

	if s1 != s2 || g1 != g2 {
		t.Errorf("same rng seed placed (%s, %s) then (%s, %s)", s1, g1, s2, g2)
	}
}

func TestPlaceEndpointsInBounds(t *testing.T) {
	grid := generateGrid(t, 10, 10, 0.3, 11)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 20; i++ {
		start, goal, err := PlaceEndpoints(grid, 0.6, rng)
		if err != nil {
			t.Fatalf("PlaceEndpoints failed: %v", err)
		}
		if !grid.InBounds(start) {
			t.Errorf("start %s out of bounds", start)
		}
		if !grid.InBounds(goal) {
			t.Errorf("goal %s out of bounds", goal)
		}
	}
}

func TestPlaceEndpointsGridTooSmall(t *testing.T) {
	g, err := NewGrid(1, 1)
	if err != nil {
		t.Fatalf("NewGrid(1, 1) failed: %v", err)
	}

	_, _, err = PlaceEndpoints(g, 0.6, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("PlaceEndpoints on 1x1 error = %v, want ErrGridTooSmall", err)
	}
}

func TestPlaceEndpointsDisconnectedGrid(t *testing.T) {
	// Sealed grid: the start has no reachable cells at all
	sealed, _ := NewGrid(3, 3)

	_, _, err := PlaceEndpoints(sealed, 0.6, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoGoalCandidate) {
		t.Errorf("PlaceEndpoints on sealed grid error = %v, want ErrNoGoalCandidate", err)
	}
}

func TestPlaceEndpointsTinyConnectedGrid(t *testing.T) {
	// 1x2 grid with the single wall removed always places (start, goal)
	// on opposite cells
	g, err := NewGrid(1, 2)
	if err != nil {
		t.Fatalf("NewGrid(1, 2) failed: %v", err)
	}
	if err := g.RemoveWall(Position{0, 0}, East); err != nil {
		t.Fatalf("RemoveWall failed: %v", err)
	}

	for seed := int64(0); seed < 10; seed++ {
		start, goal, err := PlaceEndpoints(g, 0.6, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Seed %d: PlaceEndpoints failed: %v", seed, err)
		}
		if start == goal {
			t.Errorf("Seed %d: start and goal are both %s", seed, start)
		}
	}
}
