package usecase

import (
	"context"

	"calendar-assistant/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// mockBackend records the last request of each kind and replays canned
// results.
type mockBackend struct {
	lastCreate gcalendar.CreateEventRequest
	lastUpdate gcalendar.UpdateEventRequest
	lastList   gcalendar.ListEventsRequest
	deletedID  string

	createErr error
	listed    []gcalendar.Event
}

func (m *mockBackend) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &gcalendar.Event{
		ID:        "created-1",
		Summary:   req.Summary,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Attendees: req.Attendees,
	}, nil
}

func (m *mockBackend) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.lastList = req
	return m.listed, nil
}

func (m *mockBackend) UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
	m.lastUpdate = req
	return &gcalendar.Event{ID: req.EventID, Summary: req.Summary}, nil
}

func (m *mockBackend) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deletedID = eventID
	return nil
}
