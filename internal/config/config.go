// Package config loads runtime configuration for maze generation and
// result storage from YAML, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mazebound/mazebound/internal/difficulty"
	"github.com/mazebound/mazebound/internal/results"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application-wide configuration settings.
type Config struct {
	Game    GameConfig     `yaml:"game"`
	Results results.Config `yaml:"results"`
}

// GameConfig holds maze generation settings.
type GameConfig struct {
	// Difficulty selects the maze preset: easy, medium, hard, or very_hard.
	Difficulty string `yaml:"difficulty"`

	// Seed fixes the random source for reproducible mazes.
	// 0 derives a seed from the current time.
	Seed int64 `yaml:"seed"`
}

// Level parses the configured difficulty name.
func (g *GameConfig) Level() (difficulty.Level, error) {
	return difficulty.ParseLevel(g.Difficulty)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Difficulty: "easy",
			Seed:       0, // Time-derived seed
		},
		Results: results.DefaultConfig("data/results.db"),
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns default config. Environment
// variables override values from both the file and the defaults.
func LoadConfig(path string) (*Config, error) {
	// Pull in a .env file if one exists so overrides work in development
	_ = godotenv.Load()

	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("MAZEBOUND_DIFFICULTY"); v != "" {
		config.Game.Difficulty = v
	}
	if v := os.Getenv("MAZEBOUND_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Game.Seed = seed
		}
	}
	if v := os.Getenv("MAZEBOUND_RESULTS_DRIVER"); v != "" {
		config.Results.Driver = v
	}
	if v := os.Getenv("MAZEBOUND_RESULTS_PATH"); v != "" {
		config.Results.SQLitePath = v
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if _, err := c.Game.Level(); err != nil {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidConfig, c.Game.Difficulty)
	}

	switch strings.ToLower(c.Results.Driver) {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: results driver %q", ErrInvalidConfig, c.Results.Driver)
	}

	return nil
}
