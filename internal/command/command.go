// Package command decodes the two-character turn commands typed at the
// prompt and applies them to a game.
package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"upturn/internal/game"
)

var (
	ErrMalformed      = errors.New("command must be two coordinate characters or a ! control")
	ErrUnknownControl = errors.New("unknown control command")
)

type Kind uint8

const (
	Place Kind = iota
	Rotate
	Uplift
)

func (k Kind) String() string {
	switch k {
	case Place:
		return "place"
	case Rotate:
		return "rotate"
	case Uplift:
		return "uplift"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Command is one decoded turn.
type Command struct {
	Kind      Kind
	Pos       game.Pos
	Clockwise bool
	Color     game.Cell
}

const controlPrefix = '!'

// Parse decodes a turn. Whitespace is ignored, so "3 4" and "34" are the
// same placement.
func Parse(line string) (Command, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	if len(compact) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	first, second := compact[0], compact[1]

	if first == controlPrefix {
		switch second {
		case '>':
			return Command{Kind: Rotate, Clockwise: true}, nil
		case '<':
			return Command{Kind: Rotate, Clockwise: false}, nil
		case 'B':
			return Command{Kind: Uplift, Color: game.Black}, nil
		case 'W':
			return Command{Kind: Uplift, Color: game.White}, nil
		}
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownControl, compact)
	}

	row, okRow := game.ParseLabel(first)
	col, okCol := game.ParseLabel(second)
	if !okRow || !okCol {
		return Command{}, fmt.Errorf("%w: %q", ErrMalformed, compact)
	}
	return Command{Kind: Place, Pos: game.Pos{Row: row, Col: col}}, nil
}

// Apply performs the command on g.
func (c Command) Apply(g *game.Game) error {
	switch c.Kind {
	case Place:
		return g.Place(c.Pos)
	case Rotate:
		return g.Rotate(c.Clockwise)
	case Uplift:
		return g.Uplift(c.Color)
	}
	return fmt.Errorf("%w: %s", ErrMalformed, c.Kind)
}

// String renders the command in the form Parse accepts.
func (c Command) String() string {
	switch c.Kind {
	case Rotate:
		if c.Clockwise {
			return "!>"
		}
		return "!<"
	case Uplift:
		if c.Color == game.White {
			return "!W"
		}
		return "!B"
	}
	return string([]byte{game.Label(c.Pos.Row), game.Label(c.Pos.Col)})
}
