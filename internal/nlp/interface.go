package nlp

import "context"

// UseCase is the single entry point for command interpretation.
type UseCase interface {
	// ParseCommand converts a free-form utterance into a typed,
	// confidence-scored command. It returns an error only for empty
	// input; parsing failures degrade to the local fallback parser.
	ParseCommand(ctx context.Context, text string) (ParsedCommand, error)
}
