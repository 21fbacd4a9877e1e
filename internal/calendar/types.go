package calendar

import (
	"calendar-assistant/pkg/gcalendar"
)

// Output is the result of applying a parsed command against the calendar.
// Exactly one of the payload fields is populated, matching the intent.
type Output struct {
	Created *gcalendar.Event
	Updated *gcalendar.Event
	Events  []gcalendar.Event
	Deleted bool
}

// Defaults applied when a parsed command leaves a field unspecified.
const (
	DefaultDurationMinutes = 60
	DefaultTitle           = "New Event"
)
