package room

import (
	"bufio"
	"fmt"
	"io"
)

// Display draws the room with the robot on top of it.
type Display struct {
	W io.Writer
}

func NewDisplay(w io.Writer) *Display {
	return &Display{W: w}
}

// Draw clears the terminal and prints the whole grid, one line per row.
func (d *Display) Draw(g *Grid, robotX, robotY int) {
	if d == nil || d.W == nil {
		return
	}
	w := bufio.NewWriter(d.W)
	fmt.Fprint(w, "\033[H\033[2J")
	fmt.Fprintln(w, "Vacuum cleaner robot simulation")
	fmt.Fprintln(w, "-------------------------------")
	fmt.Fprintln(w, "Legends: #=Obstacles, D=Dirt, .=Empty, R=Robot, C=Cleaned")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x == robotX && y == robotY {
				fmt.Fprint(w, "R ")
			} else {
				fmt.Fprintf(w, "%c ", g.At(x, y).Symbol())
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
