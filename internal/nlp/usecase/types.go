package usecase

import (
	"strings"
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/datemath"
)

// Wire shapes for the remote model's JSON reply. Dates travel as RFC3339
// strings and are rehydrated during validation; anything that fails to
// rehydrate is dropped rather than failing the whole parse.

type remoteReply struct {
	Intent     string         `json:"intent"`
	Confidence *float64       `json:"confidence"`
	Entities   remoteEntities `json:"entities"`
}

type remoteEntities struct {
	Title            *string           `json:"title"`
	DateTime         *string           `json:"date_time"`
	DurationMinutes  *int              `json:"duration_minutes"`
	Location         *string           `json:"location"`
	Description      *string           `json:"description"`
	ContactName      *string           `json:"contact_name"`
	Attendees        []string          `json:"attendees"`
	TimeRange        *remoteTimeRange  `json:"time_range"`
	RecurringPattern *remoteRecurrence `json:"recurring_pattern"`
	ReminderTime     *string           `json:"reminder_time"`
	ReminderType     *string           `json:"reminder_type"`
	EventID          *string           `json:"event_id"`
}

type remoteTimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type remoteRecurrence struct {
	Frequency   string   `json:"frequency"`
	Interval    int      `json:"interval"`
	DaysOfWeek  []string `json:"days_of_week"`
	DayOfMonth  int      `json:"day_of_month"`
	EndDate     *string  `json:"end_date"`
	Occurrences int      `json:"occurrences"`
}

// command validates the reply into the pipeline's output type. An intent
// outside the enum becomes unknown; a missing confidence takes the remote
// default; out-of-range confidence is clamped.
func (r remoteReply) command(originalText string) nlp.ParsedCommand {
	intent := nlp.Intent(strings.ToLower(strings.TrimSpace(r.Intent)))
	if !nlp.ValidIntent(intent) {
		intent = nlp.IntentUnknown
	}

	confidence := nlp.ConfidenceRemoteDefault
	if r.Confidence != nil {
		confidence = *r.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}
	}

	return nlp.ParsedCommand{
		Intent:       intent,
		Entities:     r.Entities.hydrate(),
		Confidence:   confidence,
		OriginalText: originalText,
	}
}

func (e remoteEntities) hydrate() nlp.Entities {
	out := nlp.Entities{
		Title:           e.Title,
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		Description:     e.Description,
		ContactName:     e.ContactName,
		Attendees:       e.Attendees,
		EventID:         e.EventID,
		DateTime:        parseInstant(e.DateTime),
		ReminderTime:    parseInstant(e.ReminderTime),
	}

	if e.TimeRange != nil {
		start := parseInstant(&e.TimeRange.Start)
		end := parseInstant(&e.TimeRange.End)
		if start != nil && end != nil && start.Before(*end) {
			out.TimeRange = &nlp.TimeRange{Start: *start, End: *end}
		}
	}

	if e.RecurringPattern != nil {
		out.RecurringPattern = e.RecurringPattern.hydrate()
	}

	if e.ReminderType != nil || out.ReminderTime != nil {
		channel := nlp.ReminderPush
		if e.ReminderType != nil {
			if candidate := nlp.ReminderType(strings.ToLower(*e.ReminderType)); nlp.ValidReminderType(candidate) {
				channel = candidate
			}
		}
		out.ReminderType = &channel
	}

	return out
}

// hydrate validates the recurrence sub-object: unrecognized frequencies
// default to daily, the interval floor is 1, and an end date displaces any
// occurrence cap since the two are mutually exclusive.
func (r remoteRecurrence) hydrate() *nlp.RecurringPattern {
	frequency := datemath.Frequency(strings.ToLower(r.Frequency))
	if !datemath.ValidFrequency(frequency) {
		frequency = datemath.FrequencyDaily
	}

	interval := r.Interval
	if interval < 1 {
		interval = 1
	}

	pattern := &nlp.RecurringPattern{
		Frequency:  frequency,
		Interval:   interval,
		DaysOfWeek: parseWeekdayNames(r.DaysOfWeek),
		EndDate:    parseInstant(r.EndDate),
	}
	if r.DayOfMonth >= 1 && r.DayOfMonth <= 31 {
		pattern.DayOfMonth = r.DayOfMonth
	}
	if pattern.EndDate == nil && r.Occurrences > 0 {
		pattern.Occurrences = r.Occurrences
	}
	return pattern
}

func parseInstant(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekdayNames(names []string) []time.Weekday {
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}
