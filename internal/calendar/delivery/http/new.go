package http

import (
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/nlp"
	pkgLog "calendar-assistant/pkg/log"
)

type handler struct {
	l      pkgLog.Logger
	parser nlp.UseCase
	uc     calendar.UseCase
}

// New creates the HTTP handler for the calendar domain.
func New(l pkgLog.Logger, parser nlp.UseCase, uc calendar.UseCase) *handler {
	return &handler{
		l:      l,
		parser: parser,
		uc:     uc,
	}
}
