// Package fallback is the local, deterministic parser used when the remote
// model is unreachable or rejected the request. It composes the rule-based
// intent classifier with the entity extractors and reports a reduced
// confidence so callers can tell the two strategies apart.
package fallback

import (
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/internal/nlp/extract"
	"calendar-assistant/internal/nlp/intent"
)

// Parse interprets text relative to now without any network dependency.
// Entity extraction is gated by the detected intent: intent-agnostic
// entities (date/time, duration, attendees, location, recurrence) always
// run, while titles, contact names, time ranges and reminders only run for
// the intents that carry them.
func Parse(text string, now time.Time) nlp.ParsedCommand {
	detected := intent.Classify(text)

	entities := nlp.Entities{
		DateTime:         extract.DateTime(text, now),
		Attendees:        extract.Attendees(text),
		Location:         extract.Location(text),
		RecurringPattern: extract.Recurrence(text, now),
	}
	entities.DurationMinutes = extract.Duration(text, entities.DateTime != nil)

	switch detected {
	case nlp.IntentCreateEvent, nlp.IntentUpdateEvent:
		entities.Title = extract.Title(text)
	case nlp.IntentAddContact, nlp.IntentQueryContact:
		entities.ContactName = extract.ContactName(text)
	case nlp.IntentListEvents, nlp.IntentQuerySchedule,
		nlp.IntentFindTime, nlp.IntentFindFreeTime, nlp.IntentCheckConflicts:
		entities.TimeRange = extract.TimeRange(text, now)
	case nlp.IntentSetReminder:
		reminderTime, channel := extract.Reminder(text, now)
		entities.ReminderTime = reminderTime
		entities.ReminderType = &channel
	}

	confidence := nlp.ConfidenceFallbackMatched
	if detected == nlp.IntentUnknown {
		confidence = nlp.ConfidenceFallbackUnknown
	}

	return nlp.ParsedCommand{
		Intent:       detected,
		Entities:     entities,
		Confidence:   confidence,
		OriginalText: text,
	}
}
