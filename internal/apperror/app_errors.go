package apperror

import "errors"

var (
	ErrGameEnded   = errors.New("game has already ended")
	ErrOutOfBounds = errors.New("cell index is out of bounds")
	ErrIndexTaken  = errors.New("cell is already taken")

	ErrGameNotFinished = errors.New("game is not finished")
	ErrNotFound        = errors.New("not found")
)
