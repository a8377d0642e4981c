package game

import "fmt"

// Cell is the content of one board square. Values fit in two bits.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Opponent returns the other color. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Pos addresses a square; row 0 is the top of the board.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// StorageKind selects the board representation.
type StorageKind uint8

const (
	Dense StorageKind = iota
	Packed
)

func (k StorageKind) String() string {
	switch k {
	case Dense:
		return "matrix"
	case Packed:
		return "bits"
	}
	return fmt.Sprintf("storage(%d)", uint8(k))
}

type Rotation uint8

const (
	NoRotation Rotation = iota
	Clockwise
	CounterClockwise
)

func (r Rotation) String() string {
	switch r {
	case NoRotation:
		return "none"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return fmt.Sprintf("rotation(%d)", uint8(r))
}

// opposes reports whether r is the strict reverse of the requested direction.
func (r Rotation) opposes(clockwise bool) bool {
	if clockwise {
		return r == CounterClockwise
	}
	return r == Clockwise
}

type Outcome uint8

const (
	InProgress Outcome = iota
	BlackWin
	WhiteWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case BlackWin:
		return "black_win"
	case WhiteWin:
		return "white_win"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Finished reports whether the match is over.
func (o Outcome) Finished() bool {
	return o != InProgress
}

func winFor(c Cell) Outcome {
	if c == Black {
		return BlackWin
	}
	return WhiteWin
}
