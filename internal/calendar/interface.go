package calendar

import (
	"context"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/gcalendar"
)

// UseCase applies parsed commands to the calendar backend.
type UseCase interface {
	Apply(ctx context.Context, cmd nlp.ParsedCommand) (Output, error)
}

// Backend is the slice of the Google Calendar client the use case needs.
// *gcalendar.Client satisfies it.
type Backend interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
