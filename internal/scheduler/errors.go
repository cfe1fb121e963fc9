package scheduler

import "errors"

// Sentinel errors returned when a selection policy finds no eligible words.
var (
	ErrNothingDue       = errors.New("no words due for review")
	ErrNothingNew       = errors.New("no new words left to learn")
	ErrNothingAvailable = errors.New("no words available in this category")
)
