package http

import (
	"calendar-assistant/internal/nlp"
	pkgLog "calendar-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc nlp.UseCase
}

// New creates the HTTP handler for the nlp domain.
func New(l pkgLog.Logger, uc nlp.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
