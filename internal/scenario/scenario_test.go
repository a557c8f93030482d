package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacuum/internal/robot"
	"vacuum/internal/room"
)

const sample = `
# a small office
room 6 4
dirt 1 2
dirt 4 0   // by the door
obstacle 3 1
start 0 3
battery 30
speed 150
strategy random
seed 7
`

func TestParse(t *testing.T) {
	cfg, err := Parse("sample", sample)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Width:     6,
		Height:    4,
		Dirt:      []Point{{1, 2}, {4, 0}},
		Obstacles: []Point{{3, 1}},
		Start:     &Point{0, 3},
		Battery:   30,
		Speed:     150,
		Strategy:  "random",
		Seed:      7,
	}, cfg)
}

func TestParseDefaultsAndOverrides(t *testing.T) {
	cfg, err := Parse("x", "room 2 2 battery 5 battery 9")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Battery)
	assert.Equal(t, robot.DefaultSpeed, cfg.Speed)
	assert.Equal(t, "sweep", cfg.Strategy)
	assert.Nil(t, cfg.Start)
}

func TestParseLayout(t *testing.T) {
	cfg, err := Parse("layout", `
layout {
  ". D # ."
  "R . . D"
}
battery 10
`)
	require.NoError(t, err)
	assert.Equal(t, []string{". D # .", "R . . D"}, cfg.Layout)
	assert.Equal(t, 10, cfg.Battery)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"room 3",
		"carpet 1 2",
		"layout { }",
		"battery lots",
	} {
		_, err := Parse("bad", src)
		assert.Error(t, err, src)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.room")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.room"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.room")
	require.NoError(t, os.WriteFile(bad, []byte("room x y"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func quiet(s *Simulation) *Simulation {
	s.Agent.Sleep = func(time.Duration) {}
	return s
}

func TestBuildDefault(t *testing.T) {
	sim, err := Build(Default(), nil)
	require.NoError(t, err)
	quiet(sim)

	assert.Equal(t, 8, sim.Grid.Width())
	assert.Equal(t, 9, sim.Grid.Count(room.Dirt))
	assert.Equal(t, 4, sim.Grid.Count(room.Obstacle))
	assert.IsType(t, robot.Sweep{}, sim.Agent.Strategy())

	report := sim.Run()
	assert.Equal(t, robot.PatternFinished, report.Outcome)
	assert.Equal(t, 36, report.Moves)
	assert.Equal(t, 4, report.Battery)
	assert.Equal(t, 9, report.Cleaned+report.Remaining)
	assert.Equal(t, report.Remaining, sim.Grid.Count(room.Dirt))
}

func TestBuildFromLayoutRendersFrames(t *testing.T) {
	cfg := &Config{
		Layout:   []string{"D . R", ". # D"},
		Battery:  50,
		Speed:    1,
		Strategy: "sweep",
	}
	var out bytes.Buffer
	sim, err := Build(cfg, &out)
	require.NoError(t, err)
	quiet(sim)

	x, y := sim.Agent.Position()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)

	report := sim.Run()
	assert.Equal(t, robot.PatternFinished, report.Outcome)
	assert.Equal(t, 2, report.Cleaned)
	assert.Equal(t, 0, report.Remaining)
	assert.Equal(t, "moves: 4, battery left: 46, cleaned: 2, dirt left: 0", report.String())

	text := out.String()
	assert.Equal(t, report.Moves+report.Cleaned, strings.Count(text, "Vacuum cleaner robot simulation"))
	assert.True(t, strings.HasSuffix(text, "Cleaning pattern finished.\n"))
}

func TestBuildRandomIsBounded(t *testing.T) {
	cfg := &Config{Width: 4, Height: 4, Battery: 12, Speed: 1, Strategy: "random", Seed: 11}
	sim, err := Build(cfg, nil)
	require.NoError(t, err)
	quiet(sim)

	report := sim.Run()
	assert.Equal(t, robot.BatteryDepleted, report.Outcome)
	assert.Equal(t, 12, report.Moves)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no size", Config{Speed: 1, Strategy: "sweep"}, room.ErrBadSize},
		{"zero speed", Config{Width: 2, Height: 2, Speed: 0, Strategy: "sweep"}, robot.ErrInvalidSpeed},
		{"negative speed", Config{Width: 2, Height: 2, Speed: -5, Strategy: "sweep"}, robot.ErrInvalidSpeed},
		{"strategy", Config{Width: 2, Height: 2, Speed: 1, Strategy: "spiral"}, ErrUnknownStrategy},
		{"dirt outside", Config{Width: 2, Height: 2, Speed: 1, Strategy: "sweep", Dirt: []Point{{2, 0}}}, room.ErrOutOfBounds},
		{"obstacle outside", Config{Width: 2, Height: 2, Speed: 1, Strategy: "sweep", Obstacles: []Point{{0, 5}}}, room.ErrOutOfBounds},
		{"dirt on obstacle", Config{Width: 2, Height: 2, Speed: 1, Strategy: "sweep", Obstacles: []Point{{1, 1}}, Dirt: []Point{{1, 1}}}, room.ErrObstacle},
		{"start on obstacle", Config{Width: 2, Height: 2, Speed: 1, Strategy: "sweep", Obstacles: []Point{{0, 0}}}, robot.ErrBadStart},
		{"bad layout", Config{Layout: []string{"..", "."}, Speed: 1, Strategy: "sweep"}, room.ErrLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(&tt.cfg, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParsedSpeedIsValidatedOnBuild(t *testing.T) {
	cfg, err := Parse("neg", "room 2 2 speed -5")
	require.NoError(t, err)
	_, err = Build(cfg, nil)
	assert.ErrorIs(t, err, robot.ErrInvalidSpeed)
}

func TestShippedScenarios(t *testing.T) {
	paths, err := filepath.Glob("../../scenarios/*.room")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg, err := Load(path)
			require.NoError(t, err)
			sim, err := Build(cfg, nil)
			require.NoError(t, err)
			quiet(sim)

			report := sim.Run()
			assert.LessOrEqual(t, report.Moves, cfg.Battery)
			assert.Equal(t, cfg.Battery-report.Moves, report.Battery)
		})
	}
}
