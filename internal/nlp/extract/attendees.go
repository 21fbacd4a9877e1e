package extract

import (
	"regexp"
	"strings"
)

var (
	// "with Alice", "with Alice, Bob and Carol". Names must be
	// capitalized so "with the team" is not treated as a name list.
	withClauseRe = regexp.MustCompile(`\bwith\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)?(?:(?:\s*,\s*|\s+and\s+)[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)?)*)`)

	// "invite Sarah", "add John and Mai"
	inviteClauseRe = regexp.MustCompile(`\b(?:[Ii]nvite|[Aa]dd)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)?(?:(?:\s*,\s*|\s+and\s+)[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)?)*)`)

	nameSplitRe = regexp.MustCompile(`\s*,\s*|\s+and\s+`)
)

// notNames are capitalized tokens a greedy name pattern can swallow that
// are really date/time words.
var notNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"today": true, "tomorrow": true, "tonight": true, "noon": true,
	"midnight": true, "morning": true, "afternoon": true, "evening": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"next": true, "this": true, "every": true,
}

// Attendees extracts the attendee name list: the "with ..." clause plus any
// "invite/add ..." clauses, merged in first-seen order with duplicates and
// date/time tokens removed.
func Attendees(text string) []string {
	var names []string
	seen := make(map[string]bool)

	add := func(raw string) {
		for _, name := range nameSplitRe.Split(raw, -1) {
			name = stripTimeTokens(name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, name)
		}
	}

	for _, re := range []*regexp.Regexp{withClauseRe, inviteClauseRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	return names
}

// stripTimeTokens removes words a greedy name pattern captured that are
// really date/time expressions, keeping the genuine name part.
func stripTimeTokens(name string) string {
	var kept []string
	for _, word := range strings.Fields(name) {
		if notNames[strings.ToLower(word)] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
