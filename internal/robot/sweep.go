package robot

import "vacuum/internal/room"

// Sweep walks the room column by column, going down the first column,
// up the second and so on.
//
// When a move is blocked the sweep turns around and jumps one row in the
// new direction. There is no backtracking: cells behind an obstacle in the
// same column are not visited.
type Sweep struct{}

func (Sweep) String() string { return "sweep" }

func (Sweep) Clean(a *Agent, g *room.Grid) Outcome {
	dir := 1
	for x := 0; x < g.Width(); x++ {
		y := 0
		if dir < 0 {
			y = g.Height() - 1
		}
		for {
			if a.Battery() <= 0 {
				return a.Stop(BatteryDepleted)
			}
			if !g.InBounds(x, y) {
				break
			}
			if !a.Move(x, y) {
				dir = -dir
				y += 2 * dir
				continue
			}
			a.CleanCurrentSpot()
			a.Pause()
			y += dir
		}
		dir = -dir
	}
	return a.Stop(PatternFinished)
}
