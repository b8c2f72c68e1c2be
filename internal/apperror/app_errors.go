package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrGameFinished     = errors.New("game is already finished")
	ErrSolutionNotFound = errors.New("solution not found")
)
