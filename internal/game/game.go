package game

import (
	"errors"
	"fmt"
)

// Config describes a new game.
type Config struct {
	Run     int
	Width   int
	Height  int
	Storage StorageKind
	// Workers bounds concurrent rows during rotation; zero is one per row.
	Workers int
}

// Game is the full rules state of one match. A Game is not safe for
// concurrent use; callers serialize turns.
type Game struct {
	run          int
	board        *Board
	black        *MoveQueue
	white        *MoveQueue
	turn         Cell
	lastRotation Rotation
	rotator      Rotator
}

type Option func(*Game)

// WithRotator replaces the rotation engine.
func WithRotator(r Rotator) Option {
	return func(g *Game) { g.rotator = r }
}

func NewGame(run, width, height int, kind StorageKind, opts ...Option) (*Game, error) {
	if run <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRun, run)
	}
	b, err := NewBoard(width, height, kind)
	if err != nil {
		return nil, err
	}
	g := &Game{
		run:     run,
		board:   b,
		black:   NewMoveQueue(),
		white:   NewMoveQueue(),
		turn:    Black,
		rotator: ParallelRotator{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// New builds a game from cfg.
func New(cfg Config) (*Game, error) {
	return NewGame(cfg.Run, cfg.Width, cfg.Height, cfg.Storage,
		WithRotator(ParallelRotator{Workers: cfg.Workers}))
}

func (g *Game) Run() int { return g.run }

func (g *Game) Turn() Cell { return g.turn }

func (g *Game) LastRotation() Rotation { return g.lastRotation }

// Board exposes the current board for reading. It is replaced on rotation,
// so callers should not hold it across turns.
func (g *Game) Board() *Board { return g.board }

// Tracked returns the queued positions for color, oldest first.
func (g *Game) Tracked(color Cell) []Pos {
	q, err := g.queue(color)
	if err != nil {
		return nil
	}
	return q.Positions()
}

func (g *Game) queue(color Cell) (*MoveQueue, error) {
	switch color {
	case Black:
		return g.black, nil
	case White:
		return g.white, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidColor, color)
}

func (g *Game) endTurn(r Rotation) {
	g.turn = g.turn.Opponent()
	g.lastRotation = r
}

// Place puts the current player's piece on p.
func (g *Game) Place(p Pos) error {
	c, err := g.board.Get(p)
	if err != nil {
		return err
	}
	if c != Empty {
		return fmt.Errorf("%w: %s holds %s", ErrCellOccupied, p, c)
	}
	q, _ := g.queue(g.turn)
	if err := g.board.Set(p, g.turn); err != nil {
		return err
	}
	q.Enqueue(p)
	g.endTurn(NoRotation)
	return nil
}

// Rotate turns the board a quarter turn. Rotating straight back against the
// previous rotation is refused; repeating the same direction is allowed.
func (g *Game) Rotate(clockwise bool) error {
	if g.lastRotation.opposes(clockwise) {
		return fmt.Errorf("%w: last rotation was %s", ErrOppositeRotationForbidden, g.lastRotation)
	}

	next, err := g.rotator.Rotate(g.board, clockwise)
	if err != nil {
		if errors.Is(err, ErrRotationFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrRotationFailed, err)
	}
	if next == nil || next.width != g.board.height || next.height != g.board.width {
		return fmt.Errorf("%w: rotator returned a malformed board", ErrRotationFailed)
	}

	move := func(p Pos) Pos { return RotatePos(p, clockwise, next.width, next.height) }
	g.board = next
	g.black = g.black.transform(move)
	g.white = g.white.transform(move)

	if clockwise {
		g.endTurn(Clockwise)
	} else {
		g.endTurn(CounterClockwise)
	}
	return nil
}

// Uplift raises the oldest tracked piece of color toward row 0. It stops one
// square below the first piece in its way. The moved piece is re-queued at
// the tail, so repeated uplifts of one color cycle through its pieces.
func (g *Game) Uplift(color Cell) error {
	q, err := g.queue(color)
	if err != nil {
		return err
	}
	origin, err := q.PeekHead()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoTrackedPiece, color)
	}
	if origin.Row == 0 {
		return fmt.Errorf("%w: %s at top row", ErrAtBoardLimit, origin)
	}
	if g.board.at(origin.Row-1, origin.Col) != Empty {
		return fmt.Errorf("%w: %s blocked from above", ErrAtBoardLimit, origin)
	}

	if _, err := q.Dequeue(); err != nil {
		return err
	}
	row := origin.Row - 1
	for row > 0 && g.board.at(row, origin.Col) == Empty {
		row--
	}
	if g.board.at(row, origin.Col) != Empty {
		row++
	}
	landing := Pos{Row: row, Col: origin.Col}

	g.board.cells.set(landing.Row, landing.Col, color)
	g.board.cells.set(origin.Row, origin.Col, Empty)
	q.Enqueue(landing)
	g.endTurn(NoRotation)
	return nil
}

// Outcome scans the current board.
func (g *Game) Outcome() Outcome {
	return Scan(g.board, g.run)
}
