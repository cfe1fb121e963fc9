package session

import "errors"

var (
	ErrNoCards         = errors.New("no cards to study")
	ErrInProgress      = errors.New("session already in progress")
	ErrNotInProgress   = errors.New("session is not in progress")
	ErrAlreadyAnswered = errors.New("card already answered")
	ErrNotAnswered     = errors.New("current card has not been answered")
	ErrUnknownMode     = errors.New("unknown study mode")
)
