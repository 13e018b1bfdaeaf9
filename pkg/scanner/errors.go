package scanner

import "errors"

var (
	// ErrInvalidAddress means the input failed address-format validation.
	// No network call is made in that case.
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrCheckRunning means a check is already in flight; results are
	// scoped to one scan at a time and fully replaced by the next.
	ErrCheckRunning = errors.New("a check is already running")
)
