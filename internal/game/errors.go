package game

import "errors"

var (
	ErrInvalidDimensions         = errors.New("board dimensions must be positive")
	ErrUnknownStorage            = errors.New("unknown board storage kind")
	ErrInvalidRun                = errors.New("run length must be positive")
	ErrOutOfBounds               = errors.New("position out of bounds")
	ErrCellOccupied              = errors.New("cell is occupied")
	ErrOppositeRotationForbidden = errors.New("cannot rotate opposite to the previous rotation")
	ErrRotationFailed            = errors.New("rotation failed")
	ErrNoTrackedPiece            = errors.New("no tracked piece for color")
	ErrAtBoardLimit              = errors.New("piece cannot rise")
	ErrEmptyQueue                = errors.New("move queue is empty")
	ErrInvalidColor              = errors.New("color must be black or white")
)
