package apperror

import "errors"

var (
	ErrPositionTaken = errors.New("position is already taken")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrInputClosed   = errors.New("input closed before a valid move was entered")
)
