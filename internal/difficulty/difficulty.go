// Package difficulty defines the built-in maze difficulty presets.
package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a difficulty name or value has no preset.
var ErrUnknownLevel = errors.New("unknown difficulty level")

// Level identifies one of the built-in difficulty presets.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	VeryHard
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	case VeryHard:
		return "VERY_HARD"
	}
	return "UNKNOWN"
}

// Settings holds the generation parameters for one difficulty level.
type Settings struct {
	// Rows and Cols are the grid dimensions.
	Rows int
	Cols int

	// ExtraOpenProb is the chance that each interior wall still standing
	// after carving is opened, adding loops. Zero keeps a perfect maze.
	ExtraOpenProb float64

	// MinGoalFraction is the minimum start-to-goal distance as a fraction
	// of the farthest reachable cell's distance from the start.
	MinGoalFraction float64
}

// presets is the only source of maze dimensions; custom sizes are not supported.
var presets = map[Level]Settings{
	Easy:     {Rows: 10, Cols: 10, ExtraOpenProb: 0.30, MinGoalFraction: 0.6},
	Medium:   {Rows: 20, Cols: 20, ExtraOpenProb: 0.15, MinGoalFraction: 0.6},
	Hard:     {Rows: 30, Cols: 30, ExtraOpenProb: 0.05, MinGoalFraction: 0.6},
	VeryHard: {Rows: 40, Cols: 40, ExtraOpenProb: 0.0, MinGoalFraction: 0.6},
}

// SettingsFor returns the preset parameters for a level.
func SettingsFor(l Level) (Settings, error) {
	s, ok := presets[l]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return s, nil
}

// Levels returns all presets from easiest to hardest.
func Levels() []Level {
	return []Level{Easy, Medium, Hard, VeryHard}
}

// ParseLevel converts a difficulty name to a Level. Matching is
// case-insensitive and accepts "very_hard", "very-hard", and "veryhard".
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "EASY":
		return Easy, nil
	case "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	case "VERY_HARD", "VERY-HARD", "VERYHARD":
		return VeryHard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
