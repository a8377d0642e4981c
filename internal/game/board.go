package game

import "fmt"

// Board is a fixed-size grid of cells. The storage kind is chosen at
// creation and never changes; both kinds behave identically.
type Board struct {
	width  int
	height int
	kind   StorageKind
	cells  cellStore
}

func NewBoard(width, height int, kind StorageKind) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b := &Board{width: width, height: height, kind: kind}
	switch kind {
	case Dense:
		b.cells = newDenseStore(width, height)
	case Packed:
		b.cells = newPackedStore(width, height)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStorage, uint8(kind))
	}
	return b, nil
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

func (b *Board) Kind() StorageKind { return b.kind }

// Contains reports whether p addresses a square on the board.
func (b *Board) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b *Board) Get(p Pos) (Cell, error) {
	if !b.Contains(p) {
		return Empty, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.width, b.height)
	}
	return b.cells.get(p.Row, p.Col), nil
}

func (b *Board) Set(p Pos, c Cell) error {
	if !b.Contains(p) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.width, b.height)
	}
	b.cells.set(p.Row, p.Col, c)
	return nil
}

// at reads a square the caller has already bounds-checked.
func (b *Board) at(row, col int) Cell {
	return b.cells.get(row, col)
}

// Count returns how many squares hold c.
func (b *Board) Count(c Cell) int {
	n := 0
	for r := 0; r < b.height; r++ {
		for col := 0; col < b.width; col++ {
			if b.at(r, col) == c {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy with the same storage kind.
func (b *Board) Clone() *Board {
	out, _ := NewBoard(b.width, b.height, b.kind)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			out.cells.set(r, c, b.at(r, c))
		}
	}
	return out
}
