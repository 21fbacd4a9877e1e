package extract

import (
	"regexp"
	"strings"
	"time"

	"calendar-assistant/internal/nlp"
)

var (
	emailChannelRe = regexp.MustCompile(`\b(?:email|e-mail|mail)\b`)
	smsChannelRe   = regexp.MustCompile(`\b(?:sms|text(?:\s+message)?)\b`)
)

// Reminder resolves the reminder instant via the date/time extractor and
// the delivery channel from keyword presence, defaulting to push.
func Reminder(text string, now time.Time) (*time.Time, nlp.ReminderType) {
	lowered := strings.ToLower(text)

	channel := nlp.ReminderPush
	switch {
	case emailChannelRe.MatchString(lowered):
		channel = nlp.ReminderEmail
	case smsChannelRe.MatchString(lowered):
		channel = nlp.ReminderSMS
	}

	return DateTime(text, now), channel
}
