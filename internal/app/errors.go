package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted = errors.New("service not started")
	ErrDuplicate  = errors.New("record already checked")
	ErrQueueFull  = errors.New("record queue full")
)
