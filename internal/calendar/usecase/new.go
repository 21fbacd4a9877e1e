package usecase

import (
	"time"

	"calendar-assistant/internal/calendar"
	pkgLog "calendar-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	backend    calendar.Backend
	calendarID string
	timezone   string
	clock      func() time.Time
}

// New creates the calendar UseCase. An empty calendarID targets the
// account's primary calendar.
func New(l pkgLog.Logger, backend calendar.Backend, calendarID, timezone string) *implUseCase {
	return &implUseCase{
		l:          l,
		backend:    backend,
		calendarID: calendarID,
		timezone:   timezone,
		clock:      time.Now,
	}
}
