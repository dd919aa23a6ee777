package apperror

import "errors"

var (
	ErrGameOver      = errors.New("game is already over")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrOutOfBounds   = errors.New("cell is out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrUnknownPlayer = errors.New("unknown player")
)
