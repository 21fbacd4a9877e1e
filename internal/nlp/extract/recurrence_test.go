package extract_test

import (
	"reflect"
	"testing"
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/internal/nlp/extract"
	"calendar-assistant/pkg/datemath"
)

func TestRecurrence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *nlp.RecurringPattern
	}{
		{
			"every weekday",
			"Create a team standup every Monday at 9am",
			&nlp.RecurringPattern{
				Frequency:  datemath.FrequencyWeekly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{time.Monday},
			},
		},
		{
			"weekday list sorted and deduped",
			"gym every friday, monday and friday",
			&nlp.RecurringPattern{
				Frequency:  datemath.FrequencyWeekly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
			},
		},
		{
			"every N units",
			"sync every 2 weeks",
			&nlp.RecurringPattern{Frequency: datemath.FrequencyWeekly, Interval: 2},
		},
		{
			"every unit",
			"review every month",
			&nlp.RecurringPattern{Frequency: datemath.FrequencyMonthly, Interval: 1},
		},
		{
			"daily keyword",
			"daily journaling at 8am",
			&nlp.RecurringPattern{Frequency: datemath.FrequencyDaily, Interval: 1},
		},
		{
			"annually keyword",
			"recurring donation annually",
			&nlp.RecurringPattern{Frequency: datemath.FrequencyYearly, Interval: 1},
		},
		{
			"day of month implies monthly",
			"pay rent every month on the 15th",
			&nlp.RecurringPattern{Frequency: datemath.FrequencyMonthly, Interval: 1, DayOfMonth: 15},
		},
		{
			"occurrence cap",
			"yoga every tuesday for 3 times",
			&nlp.RecurringPattern{
				Frequency:   datemath.FrequencyWeekly,
				Interval:    1,
				DaysOfWeek:  []time.Weekday{time.Tuesday},
				Occurrences: 3,
			},
		},
		{"no gate keyword", "schedule a meeting tomorrow at 2pm", nil},
		{"gate without frequency", "each of you should come", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Recurrence(tt.text, now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recurrence(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRecurrenceUntilDate(t *testing.T) {
	got := extract.Recurrence("standup every monday until 6/30", now)
	if got == nil {
		t.Fatalf("expected a pattern")
	}
	if got.EndDate == nil {
		t.Fatalf("expected an end date")
	}
	y, m, d := got.EndDate.Date()
	if y != 2025 || m != time.June || d != 30 {
		t.Errorf("end date = %04d-%02d-%02d, want 2025-06-30", y, m, d)
	}
	if got.Occurrences != 0 {
		t.Errorf("occurrences = %d, want 0", got.Occurrences)
	}
}

// When both an until-clause and an occurrence cap appear, the until-clause is
// the terminal condition.
func TestRecurrenceUntilBeatsOccurrences(t *testing.T) {
	got := extract.Recurrence("standup every monday for 5 times until 6/30", now)
	if got == nil {
		t.Fatalf("expected a pattern")
	}
	if got.EndDate == nil {
		t.Errorf("expected an end date")
	}
	if got.Occurrences != 0 {
		t.Errorf("occurrences = %d, want 0 alongside an end date", got.Occurrences)
	}
}

func TestReminder(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantChannel nlp.ReminderType
		wantInstant bool
	}{
		{"email channel", "remind me by email tomorrow at 9am", nlp.ReminderEmail, true},
		{"sms channel", "text me a reminder at 5pm", nlp.ReminderSMS, true},
		{"push default", "remind me tomorrow at noon about the review", nlp.ReminderPush, false},
		{"push with time", "set a reminder for 8am", nlp.ReminderPush, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, channel := extract.Reminder(tt.text, now)
			if channel != tt.wantChannel {
				t.Errorf("Reminder(%q) channel = %q, want %q", tt.text, channel, tt.wantChannel)
			}
			if tt.wantInstant && instant == nil {
				t.Errorf("Reminder(%q) instant = nil, want a resolved time", tt.text)
			}
		})
	}
}
