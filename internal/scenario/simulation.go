package scenario

import (
	"errors"
	"fmt"
	"io"

	"vacuum/internal/robot"
	"vacuum/internal/room"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Simulation ties a room to the robot that cleans it.
type Simulation struct {
	Grid  *room.Grid
	Agent *robot.Agent
}

// Report sums up a finished run.
type Report struct {
	Outcome   robot.Outcome
	Moves     int
	Battery   int
	Cleaned   int
	Remaining int
}

func (r Report) String() string {
	return fmt.Sprintf("moves: %d, battery left: %d, cleaned: %d, dirt left: %d",
		r.Moves, r.Battery, r.Cleaned, r.Remaining)
}

// NewStrategy maps a scenario strategy name to its implementation.
func NewStrategy(name string, seed int64) (robot.Strategy, error) {
	switch name {
	case "sweep", "serpentine":
		return robot.Sweep{}, nil
	case "random":
		return robot.NewRandomWalk(seed), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// Build creates the room and the robot described by cfg. Frames and the
// final status line go to out; a nil out runs silently.
func Build(cfg *Config, out io.Writer) (*Simulation, error) {
	var (
		grid  *room.Grid
		start Point
		err   error
	)
	if len(cfg.Layout) > 0 {
		l, err := room.ParseLayout(cfg.Layout)
		if err != nil {
			return nil, err
		}
		grid = l.Grid
		if l.HasStart {
			start = Point{l.Start[0], l.Start[1]}
		}
	} else {
		grid, err = room.New(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Start != nil {
		start = *cfg.Start
	}

	for _, p := range cfg.Obstacles {
		if err := grid.AddObstacle(p.X, p.Y); err != nil {
			return nil, err
		}
	}
	for _, p := range cfg.Dirt {
		if err := grid.AddDirt(p.X, p.Y); err != nil {
			return nil, err
		}
	}

	agent := robot.NewAgent(grid, cfg.Battery)
	if out != nil {
		agent.Out = out
		agent.Display = room.NewDisplay(out)
	}
	if err := agent.AdjustSpeed(cfg.Speed); err != nil {
		return nil, err
	}
	if err := agent.Place(start.X, start.Y); err != nil {
		return nil, err
	}
	strategy, err := NewStrategy(cfg.Strategy, cfg.Seed)
	if err != nil {
		return nil, err
	}
	agent.SetStrategy(strategy)

	return &Simulation{Grid: grid, Agent: agent}, nil
}

// Run lets the robot clean until its strategy stops.
func (s *Simulation) Run() Report {
	before := s.Grid.Count(room.Dirt)
	outcome := s.Agent.StartCleaning()
	after := s.Grid.Count(room.Dirt)
	return Report{
		Outcome:   outcome,
		Moves:     s.Agent.Moves(),
		Battery:   s.Agent.Battery(),
		Cleaned:   before - after,
		Remaining: after,
	}
}
