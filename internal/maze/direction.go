package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a direction name cannot be parsed.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction represents a cardinal direction. North decreases the row,
// South increases it, West decreases the column, East increases it.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Delta returns the row and column offsets of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// AllDirections returns all four cardinal directions in a fixed order.
func AllDirections() [4]Direction {
	return [4]Direction{North, South, East, West}
}

// ParseDirection converts a direction name to a Direction. Matching is
// case-insensitive and accepts single-letter abbreviations.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "north", "n", "up":
		return North, nil
	case "south", "s", "down":
		return South, nil
	case "east", "e", "right":
		return East, nil
	case "west", "w", "left":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
