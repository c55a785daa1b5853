package apperror

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrInputClosed      = errors.New("input closed")
)
