package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoPath is returned when two cells have no connecting passage.
var ErrNoPath = errors.New("no path between cells")

// Distances returns the shortest-path distance in steps from the given
// cell to every cell reachable through open walls.
func Distances(g *Grid, from Position) (map[Position]int, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("distances from %s: %w", from, ErrOutOfBounds)
	}

	dist := make(map[Position]int, g.CellCount())
	dist[from] = 0

	visited := mapset.New[Position]()
	visited.Put(from)

	queue := []Position{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.OpenNeighbors(current) {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}

	return dist, nil
}

// Eccentricity returns the largest distance in a distance map.
func Eccentricity(dist map[Position]int) int {
	max := 0
	for _, d := range dist {
		if d > max {
			max = d
		}
	}
	return max
}

// FullyConnected reports whether every cell is reachable from the
// top-left corner.
func FullyConnected(g *Grid) bool {
	dist, err := Distances(g, Position{})
	if err != nil {
		return false
	}
	return len(dist) == g.CellCount()
}

// ShortestPath returns a shortest route from one cell to another,
// inclusive of both endpoints.
func ShortestPath(g *Grid, from, to Position) ([]Position, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("path from %s: %w", from, ErrOutOfBounds)
	}
	if !g.InBounds(to) {
		return nil, fmt.Errorf("path to %s: %w", to, ErrOutOfBounds)
	}

	parent := map[Position]Position{from: from}
	visited := mapset.New[Position]()
	visited.Put(from)

	queue := []Position{from}
	found := from == to
	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.OpenNeighbors(current) {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			if next == to {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, fmt.Errorf("%s to %s: %w", from, to, ErrNoPath)
	}

	// Walk parents back from the goal, then reverse
	var path []Position
	for at := to; ; at = parent[at] {
		path = append(path, at)
		if at == from {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
