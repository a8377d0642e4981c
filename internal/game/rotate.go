package game

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Rotator produces a rotated copy of a board. Implementations must not
// modify old, and must return either a complete board or an error.
type Rotator interface {
	Rotate(old *Board, clockwise bool) (*Board, error)
}

// ParallelRotator fills the destination board one row per goroutine.
// Workers bounds how many rows run at once; zero means one goroutine per row.
type ParallelRotator struct {
	Workers int
}

// RotateBoard turns old by 90 degrees using one worker per destination row.
func RotateBoard(old *Board, clockwise bool) (*Board, error) {
	return ParallelRotator{}.Rotate(old, clockwise)
}

func (r ParallelRotator) Rotate(old *Board, clockwise bool) (*Board, error) {
	next, err := NewBoard(old.height, old.width, old.kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRotationFailed, err)
	}

	var g errgroup.Group
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for row := 0; row < next.height; row++ {
		g.Go(func() error {
			return rotateRow(old, next, row, clockwise)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRotationFailed, err)
	}
	return next, nil
}

// rotateRow writes destination row `row` of next. It only reads old and
// only writes its own row, so rows need no coordination beyond the join.
func rotateRow(old, next *Board, row int, clockwise bool) error {
	for col := 0; col < next.width; col++ {
		src := sourceOf(row, col, clockwise, next.width, next.height)
		c, err := old.Get(src)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		next.cells.set(row, col, c)
	}
	return nil
}

// sourceOf maps a destination square of the rotated board back to the
// square of the original board it is copied from.
func sourceOf(row, col int, clockwise bool, newWidth, newHeight int) Pos {
	if clockwise {
		return Pos{Row: newWidth - 1 - col, Col: row}
	}
	return Pos{Row: col, Col: newHeight - 1 - row}
}

// RotatePos maps a square of the original board to its place on the rotated
// board. It is the inverse of the mapping RotateBoard copies cells with.
func RotatePos(p Pos, clockwise bool, newWidth, newHeight int) Pos {
	if clockwise {
		return Pos{Row: p.Col, Col: newWidth - 1 - p.Row}
	}
	return Pos{Row: newHeight - 1 - p.Col, Col: p.Row}
}
