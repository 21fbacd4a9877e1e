package nlp

import (
	"time"

	"calendar-assistant/pkg/datemath"
)

// Intent is the closed-set classification of what the user wants done.
type Intent string

const (
	IntentCreateEvent    Intent = "create_event"
	IntentUpdateEvent    Intent = "update_event"
	IntentDeleteEvent    Intent = "delete_event"
	IntentListEvents     Intent = "list_events"
	IntentQuerySchedule  Intent = "query_schedule"
	IntentAddContact     Intent = "add_contact"
	IntentQueryContact   Intent = "query_contact"
	IntentSetReminder    Intent = "set_reminder"
	IntentFindTime       Intent = "find_time"
	IntentFindFreeTime   Intent = "find_free_time"
	IntentAddAttendee    Intent = "add_attendee"
	IntentCheckConflicts Intent = "check_conflicts"
	IntentUnknown        Intent = "unknown"
)

// ValidIntent reports whether i is a member of the Intent enum.
func ValidIntent(i Intent) bool {
	switch i {
	case IntentCreateEvent, IntentUpdateEvent, IntentDeleteEvent,
		IntentListEvents, IntentQuerySchedule, IntentAddContact,
		IntentQueryContact, IntentSetReminder, IntentFindTime,
		IntentFindFreeTime, IntentAddAttendee, IntentCheckConflicts,
		IntentUnknown:
		return true
	}
	return false
}

// ReminderType is the delivery channel for a reminder.
type ReminderType string

const (
	ReminderEmail ReminderType = "email"
	ReminderSMS   ReminderType = "sms"
	ReminderPush  ReminderType = "push"
)

// ValidReminderType reports whether r is a member of the ReminderType enum.
func ValidReminderType(r ReminderType) bool {
	switch r {
	case ReminderEmail, ReminderSMS, ReminderPush:
		return true
	}
	return false
}

// TimeRange is a start/end instant pair with Start strictly before End.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RecurringPattern describes a repeating schedule extracted from text.
// EndDate and Occurrences are mutually exclusive terminal conditions.
type RecurringPattern struct {
	Frequency   datemath.Frequency `json:"frequency"`
	Interval    int                `json:"interval"`
	DaysOfWeek  []time.Weekday     `json:"days_of_week,omitempty"`
	DayOfMonth  int                `json:"day_of_month,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Occurrences int                `json:"occurrences,omitempty"`
}

// Recurrence converts the pattern into datemath's expansion form.
func (p RecurringPattern) Recurrence() datemath.Recurrence {
	return datemath.Recurrence{
		Frequency:  p.Frequency,
		Interval:   p.Interval,
		DaysOfWeek: p.DaysOfWeek,
		DayOfMonth: p.DayOfMonth,
		EndDate:    p.EndDate,
		Count:      p.Occurrences,
	}
}

// Entities is the sparse record of everything extracted from an utterance.
// Only fields relevant to the detected intent are populated; absence is a
// nil pointer or empty slice, never a zero-filled value.
type Entities struct {
	Title            *string           `json:"title,omitempty"`
	DateTime         *time.Time        `json:"date_time,omitempty"`
	DurationMinutes  *int              `json:"duration_minutes,omitempty"`
	Location         *string           `json:"location,omitempty"`
	Description      *string           `json:"description,omitempty"`
	ContactName      *string           `json:"contact_name,omitempty"`
	Attendees        []string          `json:"attendees,omitempty"`
	TimeRange        *TimeRange        `json:"time_range,omitempty"`
	RecurringPattern *RecurringPattern `json:"recurring_pattern,omitempty"`
	ReminderTime     *time.Time        `json:"reminder_time,omitempty"`
	ReminderType     *ReminderType     `json:"reminder_type,omitempty"`
	EventID          *string           `json:"event_id,omitempty"`
}

// ParsedCommand is the pipeline's sole output type.
type ParsedCommand struct {
	Intent       Intent   `json:"intent"`
	Entities     Entities `json:"entities"`
	Confidence   float64  `json:"confidence"`
	OriginalText string   `json:"original_text"`
}

// Confidence levels carried by each parsing strategy.
const (
	ConfidenceFallbackMatched = 0.6 // local parse, intent recognized
	ConfidenceFallbackUnknown = 0.3 // local parse, no intent pattern matched
	ConfidenceRemoteDefault   = 0.5 // remote reply without a confidence field
)
