package repository

import "errors"

// Sentinel kinds for outcome store errors.
var (
	ErrOpenStore    = errors.New("open outcome store")
	ErrInvalidLimit = errors.New("invalid listing limit")
	ErrMissingID    = errors.New("outcome has no record id")
)
