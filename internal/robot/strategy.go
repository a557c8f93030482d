package robot

import (
	"fmt"

	"vacuum/internal/room"
)

// Strategy decides where the robot goes. Clean drives the agent over g
// until the pattern is done or the robot can no longer move.
type Strategy interface {
	Clean(a *Agent, g *room.Grid) Outcome
}

// Outcome says why a cleaning run stopped.
type Outcome int

const (
	BatteryDepleted Outcome = iota
	PatternFinished
	Trapped
)

func (o Outcome) String() string {
	switch o {
	case BatteryDepleted:
		return "Battery depleted, stopping."
	case PatternFinished:
		return "Cleaning pattern finished."
	case Trapped:
		return "Robot trapped, stopping."
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type direction struct{ dx, dy int }

// north, south, east, west
var directions = [4]direction{
	{0, -1},
	{0, 1},
	{1, 0},
	{-1, 0},
}
