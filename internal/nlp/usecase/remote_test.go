package usecase

import (
	"testing"
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/datemath"
)

func TestDecodeReplyStripsCodeFences(t *testing.T) {
	content := "Here is the result:\n```json\n{\"intent\": \"list_events\", \"confidence\": 0.7, \"entities\": {}}\n```"

	got, err := decodeReply(content, "show my events")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}
	if got.Intent != nlp.IntentListEvents {
		t.Errorf("intent = %q, want list_events", got.Intent)
	}
	if got.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", got.Confidence)
	}
}

func TestDecodeReplyUnknownIntentSubstituted(t *testing.T) {
	got, err := decodeReply(`{"intent": "make_coffee", "entities": {}}`, "make coffee")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}
	if got.Intent != nlp.IntentUnknown {
		t.Errorf("intent = %q, want unknown", got.Intent)
	}
	if got.Confidence != nlp.ConfidenceRemoteDefault {
		t.Errorf("confidence = %v, want default %v", got.Confidence, nlp.ConfidenceRemoteDefault)
	}
}

// Trailing commas and other near-JSON artifacts get one repair pass before
// the reply is rejected.
func TestDecodeReplyRepairsMalformedJSON(t *testing.T) {
	content := `{"intent": "create_event", "confidence": 0.8, "entities": {"title": "Standup",},}`

	got, err := decodeReply(content, "create standup")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}
	if got.Intent != nlp.IntentCreateEvent {
		t.Errorf("intent = %q, want create_event", got.Intent)
	}
	if got.Entities.Title == nil || *got.Entities.Title != "Standup" {
		t.Errorf("title = %v, want Standup", got.Entities.Title)
	}
}

func TestDecodeReplyProseIsRejected(t *testing.T) {
	if _, err := decodeReply("I could not parse that command.", "gibberish"); err == nil {
		t.Fatalf("expected an error for a prose reply")
	}
}

func TestDecodeReplyConfidenceClamped(t *testing.T) {
	got, err := decodeReply(`{"intent": "list_events", "confidence": 1.7, "entities": {}}`, "list")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}
	if got.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", got.Confidence)
	}
}

func TestDecodeReplyRecurrenceValidation(t *testing.T) {
	content := `{
		"intent": "create_event",
		"confidence": 0.9,
		"entities": {
			"recurring_pattern": {
				"frequency": "fortnightly",
				"interval": 0,
				"days_of_week": ["Monday", "monday", "wednesday"],
				"end_date": "2025-06-30T00:00:00Z",
				"occurrences": 5
			}
		}
	}`

	got, err := decodeReply(content, "repeat it")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}

	pattern := got.Entities.RecurringPattern
	if pattern == nil {
		t.Fatalf("expected a recurring pattern")
	}
	if pattern.Frequency != datemath.FrequencyDaily {
		t.Errorf("frequency = %q, want daily substituted for unrecognized", pattern.Frequency)
	}
	if pattern.Interval != 1 {
		t.Errorf("interval = %d, want floor of 1", pattern.Interval)
	}
	if len(pattern.DaysOfWeek) != 2 || pattern.DaysOfWeek[0] != time.Monday || pattern.DaysOfWeek[1] != time.Wednesday {
		t.Errorf("days = %v, want [Monday Wednesday]", pattern.DaysOfWeek)
	}
	if pattern.EndDate == nil {
		t.Errorf("expected an end date")
	}
	if pattern.Occurrences != 0 {
		t.Errorf("occurrences = %d, want 0 alongside an end date", pattern.Occurrences)
	}
}

func TestDecodeReplyReminderDefaultsToPush(t *testing.T) {
	content := `{
		"intent": "set_reminder",
		"confidence": 0.9,
		"entities": {"reminder_time": "2025-05-15T09:00:00Z", "reminder_type": "carrier_pigeon"}
	}`

	got, err := decodeReply(content, "remind me")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}
	if got.Entities.ReminderType == nil || *got.Entities.ReminderType != nlp.ReminderPush {
		t.Errorf("reminder type = %v, want push", got.Entities.ReminderType)
	}
	if got.Entities.ReminderTime == nil {
		t.Errorf("expected a reminder time")
	}
}

func TestDecodeReplyInvalidDateDropped(t *testing.T) {
	content := `{"intent": "create_event", "confidence": 0.9, "entities": {"date_time": "next tuesday"}}`

	got, err := decodeReply(content, "create event")
	if err != nil {
		t.Fatalf("decodeReply: %v", err)
	}
	if got.Entities.DateTime != nil {
		t.Errorf("date/time = %v, want dropped", got.Entities.DateTime)
	}
}
