// Package intent maps lowercased utterances to a closed set of command
// intents via ordered pattern matching. First match wins, so more specific
// phrasings must stay ahead of the generic ones: attendee changes before
// event creation, schedule questions before generic listing. The precedence
// cases are pinned by tests in classifier_test.go.
package intent

import (
	"regexp"
	"strings"

	"calendar-assistant/internal/nlp"
)

type rule struct {
	pattern *regexp.Regexp
	intent  nlp.Intent
}

var rules = []rule{
	// Attendee changes must beat generic creation: "invite Sarah to the
	// budget meeting" is an add, not a create.
	{regexp.MustCompile(`\b(?:invite|add)\s+[a-z]+(?:\s+[a-z]+)?\s+(?:and\s+[a-z]+\s+)?to\s+(?:the\s+|my\s+|a\s+)?.*?\b(?:meeting|event|call|appointment|standup|sync)\b`), nlp.IntentAddAttendee},
	{regexp.MustCompile(`\binvite\b.*\bto\b`), nlp.IntentAddAttendee},

	{regexp.MustCompile(`\b(?:conflicts?|double[- ]?book(?:ed|ing)?|overlap(?:s|ping)?)\b`), nlp.IntentCheckConflicts},

	// Availability questions precede schedule questions so "am I free"
	// does not fall through to query_schedule.
	{regexp.MustCompile(`\b(?:free\s+time|am\s+i\s+free|when\s+am\s+i\s+free|availability|available\s+(?:slots?|times?))\b`), nlp.IntentFindFreeTime},
	{regexp.MustCompile(`\bfind\s+(?:a\s+|some\s+)?time\b|\bwhen\s+can\s+(?:we|i)\s+meet\b`), nlp.IntentFindTime},

	{regexp.MustCompile(`\bremind\s+me\b|\bset\s+(?:a\s+)?reminder\b`), nlp.IntentSetReminder},

	{regexp.MustCompile(`\b(?:add|create|save|new)\s+(?:a\s+)?(?:new\s+)?contact\b`), nlp.IntentAddContact},
	{regexp.MustCompile(`\b[a-z]+'s\s+(?:email|phone|number|address|contact)\b|\bcontact\s+(?:info|details?)\b|\b(?:email|phone\s+number)\s+(?:of|for)\b`), nlp.IntentQueryContact},

	{regexp.MustCompile(`\b(?:delete|cancel|remove|drop)\b.*\b(?:meeting|event|appointment|call|standup)\b`), nlp.IntentDeleteEvent},
	{regexp.MustCompile(`\b(?:reschedule|postpone|push\s+back)\b|\b(?:update|change|modify|move|edit)\b.*\b(?:meeting|event|appointment|call|time)\b`), nlp.IntentUpdateEvent},

	// Schedule questions beat generic listing: "what's on my calendar"
	// is pinned to query_schedule.
	{regexp.MustCompile(`\bwhat(?:'s| is)\s+on\s+my\s+(?:calendar|schedule|agenda)\b|\bdo\s+i\s+have\s+(?:any(?:thing)?|a|an)\b|\bam\s+i\s+busy\b|\bwhat\s+does\s+my\s+(?:day|week|month)\s+look\s+like\b`), nlp.IntentQuerySchedule},
	{regexp.MustCompile(`\b(?:list|show|view|display)\b.*\b(?:events?|meetings?|appointments?|calendar|schedule)\b|\bupcoming\s+(?:events?|meetings?|appointments?)\b`), nlp.IntentListEvents},

	{regexp.MustCompile(`\b(?:schedule|create|add|book|plan|set\s+up|organi[sz]e|arrange|new)\b.*\b(?:meeting|event|appointment|call|standup|sync|session|lunch|dinner|review|interview|demo|catch[- ]?up)\b|\bmeet\s+with\b`), nlp.IntentCreateEvent},
}

// Classify returns the intent of the first matching pattern, or
// IntentUnknown when nothing matches.
func Classify(text string) nlp.Intent {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.pattern.MatchString(lowered) {
			return r.intent
		}
	}
	return nlp.IntentUnknown
}
