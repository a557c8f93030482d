package room

import (
	"errors"
	"fmt"
)

// Cell is the state of one square of the room.
type Cell int

const (
	Empty Cell = iota
	Dirt
	Obstacle
	Cleaned
)

var (
	ErrBadSize     = errors.New("room dimensions must be positive")
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	ErrObstacle    = errors.New("cell is an obstacle")
)

// Symbol returns the character used to draw the cell.
func (c Cell) Symbol() byte {
	switch c {
	case Dirt:
		return 'D'
	case Obstacle:
		return '#'
	case Cleaned:
		return 'C'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Dirt:
		return "dirt"
	case Obstacle:
		return "obstacle"
	case Cleaned:
		return "cleaned"
	}
	return fmt.Sprintf("Cell(%d)", int(c))
}

// Grid is a fixed size room indexed as cells[y][x].
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{cells: cells, width: width, height: height}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the state of a cell; anything outside the room reads as Empty.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

func (g *Grid) IsDirt(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Dirt
}

func (g *Grid) IsObstacle(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Obstacle
}

// AddDirt marks a cell dirty. Obstacles stay obstacles.
func (g *Grid) AddDirt(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("dirt at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	if g.cells[y][x] == Obstacle {
		return fmt.Errorf("dirt at (%d,%d): %w", x, y, ErrObstacle)
	}
	g.cells[y][x] = Dirt
	return nil
}

func (g *Grid) AddObstacle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("obstacle at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	g.cells[y][x] = Obstacle
	return nil
}

// Clean turns a dirty cell into a cleaned one and reports whether it did.
func (g *Grid) Clean(x, y int) bool {
	if !g.IsDirt(x, y) {
		return false
	}
	g.cells[y][x] = Cleaned
	return true
}

// Count returns how many cells are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}
