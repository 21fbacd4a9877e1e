package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrMissingDateTime   = errors.New("command has no resolved date or time")
	ErrMissingEventID    = errors.New("command does not reference an event")
	ErrUnsupportedIntent = errors.New("intent is not a calendar operation")
)
