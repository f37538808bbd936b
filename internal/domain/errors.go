package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownSection is returned before any external call when a section
	// identifier is not part of the fixed report section set.
	ErrUnknownSection = errors.New("unknown report section")
)
