package scenario

import (
	"fmt"
	"os"

	"vacuum/internal/robot"
)

const defaultSpeed = robot.DefaultSpeed

type Point struct{ X, Y int }

// Config describes one simulation run.
type Config struct {
	Width, Height int
	// Layout, when set, replaces Width and Height with a drawn room.
	Layout    []string
	Dirt      []Point
	Obstacles []Point
	// Start defaults to the R in Layout, or the origin.
	Start    *Point
	Battery  int
	Speed    int
	Strategy string
	// Seed for the random walk; zero means seed from the clock.
	Seed int64
}

// Default is the scenario run when no file is given.
func Default() *Config {
	return &Config{
		Width:  8,
		Height: 6,
		Dirt: []Point{
			{0, 1}, {1, 4}, {2, 2}, {3, 5}, {4, 1},
			{5, 3}, {6, 0}, {6, 5}, {7, 2},
		},
		Obstacles: []Point{
			{3, 0}, {2, 4}, {5, 5}, {6, 2},
		},
		Battery:  40,
		Speed:    defaultSpeed,
		Strategy: "sweep",
	}
}

// Load reads and parses a scenario file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return cfg, nil
}
