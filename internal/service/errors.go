package service

import "errors"

var (
	// ErrNoWords is returned when an operation ends up with no words to work on
	ErrNoWords = errors.New("nothing to add")
	// ErrSessionNotFound is returned for a practice session id that is not the active session
	ErrSessionNotFound = errors.New("practice session not found")
	// ErrUnknownMode is returned for a practice mode that does not exist
	ErrUnknownMode = errors.New("unknown practice mode")
)
