package openai

import "time"

const (
	// DefaultModel is the default completion model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds a single completion request
	DefaultTimeout = 10 * time.Second

	// DefaultRetryAfter is assumed when a 429 carries no Retry-After header
	DefaultRetryAfter = 60 * time.Second
)
