package nlp

import "errors"

// Domain-specific errors for the nlp package.
var (
	// ErrEmptyInput is returned for blank input text. This is the one
	// parsing precondition callers are expected to handle; every other
	// failure degrades to the local fallback parser instead.
	ErrEmptyInput = errors.New("input text is empty")
)
