package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
)

// Apply routes a parsed command to the matching backend operation.
func (uc *implUseCase) Apply(ctx context.Context, cmd nlp.ParsedCommand) (calendar.Output, error) {
	switch cmd.Intent {
	case nlp.IntentCreateEvent:
		return uc.create(ctx, cmd.Entities)
	case nlp.IntentUpdateEvent, nlp.IntentAddAttendee:
		return uc.update(ctx, cmd.Entities)
	case nlp.IntentDeleteEvent:
		return uc.delete(ctx, cmd.Entities)
	case nlp.IntentListEvents, nlp.IntentQuerySchedule,
		nlp.IntentFindFreeTime, nlp.IntentCheckConflicts:
		return uc.list(ctx, cmd.Entities)
	default:
		return calendar.Output{}, calendar.ErrUnsupportedIntent
	}
}

func (uc *implUseCase) create(ctx context.Context, e nlp.Entities) (calendar.Output, error) {
	if e.DateTime == nil {
		return calendar.Output{}, calendar.ErrMissingDateTime
	}

	title := calendar.DefaultTitle
	if e.Title != nil {
		title = *e.Title
	}
	duration := calendar.DefaultDurationMinutes
	if e.DurationMinutes != nil {
		duration = *e.DurationMinutes
	}

	req := gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    title,
		StartTime:  *e.DateTime,
		EndTime:    e.DateTime.Add(time.Duration(duration) * time.Minute),
		Timezone:   uc.timezone,
		Attendees:  e.Attendees,
	}
	if e.Location != nil {
		req.Location = *e.Location
	}
	if e.Description != nil {
		req.Description = *e.Description
	}
	if e.RecurringPattern != nil {
		req.Recurrence = []string{rruleFromPattern(*e.RecurringPattern)}
	}

	created, err := uc.backend.CreateEvent(ctx, req)
	if err != nil {
		return calendar.Output{}, err
	}
	uc.l.Infof(ctx, "created event %s (%s)", created.ID, created.Summary)
	return calendar.Output{Created: created}, nil
}

func (uc *implUseCase) update(ctx context.Context, e nlp.Entities) (calendar.Output, error) {
	if e.EventID == nil {
		return calendar.Output{}, calendar.ErrMissingEventID
	}

	req := gcalendar.UpdateEventRequest{
		CalendarID: uc.calendarID,
		EventID:    *e.EventID,
		Timezone:   uc.timezone,
	}
	if e.Title != nil {
		req.Summary = *e.Title
	}
	if e.Location != nil {
		req.Location = *e.Location
	}
	if e.Description != nil {
		req.Description = *e.Description
	}
	if e.DateTime != nil {
		req.StartTime = *e.DateTime
		duration := calendar.DefaultDurationMinutes
		if e.DurationMinutes != nil {
			duration = *e.DurationMinutes
		}
		req.EndTime = e.DateTime.Add(time.Duration(duration) * time.Minute)
	}

	updated, err := uc.backend.UpdateEvent(ctx, req)
	if err != nil {
		return calendar.Output{}, err
	}
	return calendar.Output{Updated: updated}, nil
}

func (uc *implUseCase) delete(ctx context.Context, e nlp.Entities) (calendar.Output, error) {
	if e.EventID == nil {
		return calendar.Output{}, calendar.ErrMissingEventID
	}
	if err := uc.backend.DeleteEvent(ctx, uc.calendarID, *e.EventID); err != nil {
		return calendar.Output{}, err
	}
	return calendar.Output{Deleted: true}, nil
}

// list resolves the query window: an explicit range wins, a single
// date/time widens to its day, and the default is the week ahead.
func (uc *implUseCase) list(ctx context.Context, e nlp.Entities) (calendar.Output, error) {
	var start, end time.Time
	switch {
	case e.TimeRange != nil:
		start, end = e.TimeRange.Start, e.TimeRange.End
	case e.DateTime != nil:
		start = datemath.StartOfDay(*e.DateTime)
		end = datemath.EndOfDay(*e.DateTime)
	default:
		now := uc.clock()
		start = now
		end = now.AddDate(0, 0, 7)
	}

	events, err := uc.backend.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return calendar.Output{}, err
	}
	return calendar.Output{Events: events}, nil
}
