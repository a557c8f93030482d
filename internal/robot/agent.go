package robot

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"vacuum/internal/room"
)

// DefaultSpeed is the pause between steps in milliseconds.
const DefaultSpeed = 200

var (
	ErrInvalidSpeed = errors.New("speed must be positive")
	ErrBadStart     = errors.New("robot cannot start there")
)

// Renderer draws the room after the robot changes something.
type Renderer interface {
	Draw(g *room.Grid, robotX, robotY int)
}

// Agent is the vacuum robot. It borrows the grid it cleans; the grid is
// never copied, so the agent and its strategy always see the same room.
type Agent struct {
	x, y     int
	grid     *room.Grid
	battery  int
	capacity int
	speed    int
	moves    int
	strategy Strategy

	Display Renderer
	// Out receives the status line printed when a strategy stops.
	Out   io.Writer
	Log   *log.Logger
	Sleep func(time.Duration)
}

func NewAgent(g *room.Grid, capacity int) *Agent {
	if capacity < 0 {
		capacity = 0
	}
	return &Agent{
		grid:     g,
		battery:  capacity,
		capacity: capacity,
		speed:    DefaultSpeed,
		strategy: Sweep{},
		Log:      log.New(io.Discard, "", 0),
		Sleep:    time.Sleep,
	}
}

func (a *Agent) Position() (int, int) { return a.x, a.y }
func (a *Agent) Battery() int         { return a.battery }
func (a *Agent) Capacity() int        { return a.capacity }
func (a *Agent) Speed() int           { return a.speed }
func (a *Agent) Moves() int           { return a.moves }
func (a *Agent) Grid() *room.Grid     { return a.grid }
func (a *Agent) Strategy() Strategy   { return a.strategy }

func (a *Agent) String() string {
	return fmt.Sprintf("(%d,%d) battery %d/%d", a.x, a.y, a.battery, a.capacity)
}

func (a *Agent) AdjustSpeed(speed int) error {
	if speed <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSpeed, speed)
	}
	a.speed = speed
	return nil
}

// Place puts the robot on a cell without spending battery.
func (a *Agent) Place(x, y int) error {
	if !a.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) %v", ErrBadStart, x, y, room.ErrOutOfBounds)
	}
	if a.grid.IsObstacle(x, y) {
		return fmt.Errorf("%w: (%d,%d) %v", ErrBadStart, x, y, room.ErrObstacle)
	}
	a.x, a.y = x, y
	return nil
}

// Move sends the robot to (x, y). It refuses, leaving everything as it
// was, when the battery is empty or the target is outside the room or
// blocked.
func (a *Agent) Move(x, y int) bool {
	switch {
	case a.battery <= 0:
		a.Log.Printf("move to (%d,%d) refused: battery empty", x, y)
		return false
	case !a.grid.InBounds(x, y):
		a.Log.Printf("move to (%d,%d) refused: out of bounds", x, y)
		return false
	case a.grid.IsObstacle(x, y):
		a.Log.Printf("move to (%d,%d) refused: obstacle", x, y)
		return false
	}
	a.x, a.y = x, y
	a.draw()
	a.battery--
	a.moves++
	return true
}

func (a *Agent) CleanCurrentSpot() bool {
	if !a.grid.IsDirt(a.x, a.y) {
		return false
	}
	a.grid.Clean(a.x, a.y)
	a.draw()
	return true
}

func (a *Agent) Recharge() {
	a.battery = a.capacity
}

func (a *Agent) SetStrategy(s Strategy) {
	a.Log.Printf("strategy set to %v", s)
	a.strategy = s
}

// StartCleaning runs the current strategy to completion.
func (a *Agent) StartCleaning() Outcome {
	if a.strategy == nil {
		a.strategy = Sweep{}
	}
	return a.strategy.Clean(a, a.grid)
}

// Pause waits for one step at the current speed.
func (a *Agent) Pause() {
	if a.Sleep != nil {
		a.Sleep(time.Duration(a.speed) * time.Millisecond)
	}
}

// Stop prints the status line for o and returns it.
func (a *Agent) Stop(o Outcome) Outcome {
	if a.Out != nil {
		fmt.Fprintln(a.Out, o)
	}
	return o
}

func (a *Agent) draw() {
	if a.Display != nil {
		a.Display.Draw(a.grid, a.x, a.y)
	}
}
