package robot

import (
	"math/rand"
	"time"

	"vacuum/internal/room"
)

// RandomWalk picks one of the four directions at random on every step
// and keeps going until the battery runs out. Blocked moves are simply
// retried with a fresh direction.
type RandomWalk struct {
	rng *rand.Rand
}

// NewRandomWalk seeds the walk; zero seeds from the clock.
func NewRandomWalk(seed int64) *RandomWalk {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomWalk{rng: rand.New(rand.NewSource(seed))}
}

func (w *RandomWalk) String() string { return "random" }

func (w *RandomWalk) Clean(a *Agent, g *room.Grid) Outcome {
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for a.Battery() > 0 {
		x, y := a.Position()
		if !canLeave(g, x, y) {
			return a.Stop(Trapped)
		}
		d := directions[w.rng.Intn(len(directions))]
		if !a.Move(x+d.dx, y+d.dy) {
			continue
		}
		a.CleanCurrentSpot()
		a.Pause()
	}
	return a.Stop(BatteryDepleted)
}

// canLeave reports whether any neighbour of (x, y) can be entered.
func canLeave(g *room.Grid, x, y int) bool {
	for _, d := range directions {
		nx, ny := x+d.dx, y+d.dy
		if g.InBounds(nx, ny) && !g.IsObstacle(nx, ny) {
			return true
		}
	}
	return false
}
