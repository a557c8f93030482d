package room

import (
	"errors"
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var ErrLayout = errors.New("bad layout")

// Layout is a grid read from ASCII rows plus the robot start marked with R.
type Layout struct {
	Grid     *Grid
	Start    [2]int
	HasStart bool
}

// symbol is one lexed layout character; robot marks the start cell.
type symbol struct {
	cell   Cell
	robot  bool
	column int
}

var (
	layoutOnce  sync.Once
	layoutLexer *lexmachine.Lexer
	layoutErr   error
)

func compileLayoutLexer() (*lexmachine.Lexer, error) {
	layoutOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[ \t\r]+`), skip)
		l.Add([]byte(`[.]`), cellAction(Empty, false))
		l.Add([]byte(`D`), cellAction(Dirt, false))
		l.Add([]byte(`[#]`), cellAction(Obstacle, false))
		l.Add([]byte(`C`), cellAction(Cleaned, false))
		l.Add([]byte(`R`), cellAction(Empty, true))
		layoutErr = l.Compile()
		layoutLexer = l
	})
	return layoutLexer, layoutErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func cellAction(c Cell, robot bool) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return symbol{cell: c, robot: robot, column: m.StartColumn}, nil
	}
}

// ParseLayout builds a grid from rows written in the display legend,
// e.g. ". D # R". Row i becomes y=i. All rows must be the same width.
func ParseLayout(rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLayout)
	}
	lex, err := compileLayoutLexer()
	if err != nil {
		return nil, err
	}

	parsed := make([][]symbol, len(rows))
	for y, row := range rows {
		scanner, err := lex.Scanner([]byte(row))
		if err != nil {
			return nil, err
		}
		for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrLayout, y+1, err)
			}
			parsed[y] = append(parsed[y], tok.(symbol))
		}
		if y > 0 && len(parsed[y]) != len(parsed[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayout, y+1, len(parsed[y]), len(parsed[0]))
		}
	}

	g, err := New(len(parsed[0]), len(parsed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	out := &Layout{Grid: g}
	for y, row := range parsed {
		for x, sym := range row {
			g.cells[y][x] = sym.cell
			if sym.robot {
				if out.HasStart {
					return nil, fmt.Errorf("%w: second robot at row %d column %d", ErrLayout, y+1, sym.column)
				}
				out.Start = [2]int{x, y}
				out.HasStart = true
			}
		}
	}
	return out, nil
}
