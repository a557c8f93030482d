package scenario

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed scenario: a flat list of directives.
type File struct {
	Directives []*Directive `parser:"@@*"`
}

type Directive struct {
	Room     *Size    `parser:"  'room' @@"`
	Layout   []string `parser:"| 'layout' '{' @String+ '}'"`
	Dirt     *Coord   `parser:"| 'dirt' @@"`
	Obstacle *Coord   `parser:"| 'obstacle' @@"`
	Start    *Coord   `parser:"| 'start' @@"`
	Battery  *int     `parser:"| 'battery' @Int"`
	Speed    *int     `parser:"| 'speed' @Int"`
	Strategy *string  `parser:"| 'strategy' @Ident"`
	Seed     *int64   `parser:"| 'seed' @Int"`
}

type Size struct {
	Width  int `parser:"@Int"`
	Height int `parser:"@Int"`
}

type Coord struct {
	X int `parser:"@Int"`
	Y int `parser:"@Int"`
}

var scenarioLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "String", Pattern: `"[^"\n]*"`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(scenarioLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse reads scenario source into a Config. Later directives override
// earlier ones; dirt and obstacle directives accumulate.
func Parse(name, src string) (*Config, error) {
	f, err := parser.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Speed:    defaultSpeed,
		Strategy: "sweep",
	}
	for _, d := range f.Directives {
		switch {
		case d.Room != nil:
			cfg.Width, cfg.Height = d.Room.Width, d.Room.Height
		case d.Layout != nil:
			cfg.Layout = d.Layout
		case d.Dirt != nil:
			cfg.Dirt = append(cfg.Dirt, Point{d.Dirt.X, d.Dirt.Y})
		case d.Obstacle != nil:
			cfg.Obstacles = append(cfg.Obstacles, Point{d.Obstacle.X, d.Obstacle.Y})
		case d.Start != nil:
			cfg.Start = &Point{d.Start.X, d.Start.Y}
		case d.Battery != nil:
			cfg.Battery = *d.Battery
		case d.Speed != nil:
			cfg.Speed = *d.Speed
		case d.Strategy != nil:
			cfg.Strategy = *d.Strategy
		case d.Seed != nil:
			cfg.Seed = *d.Seed
		}
	}
	return cfg, nil
}
