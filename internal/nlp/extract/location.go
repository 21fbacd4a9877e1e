package extract

import (
	"regexp"
	"strings"
)

var (
	// "at Starbucks", "in Conference Room B": a capitalized phrase up to
	// the next clause boundary.
	locationRe = regexp.MustCompile(`\b(?:at|in)\s+(?:the\s+)?([A-Z][\w'&-]*(?:\s+(?:[A-Z0-9][\w'&-]*|of|the))*)`)

	clockLikeRe = regexp.MustCompile(`^\d`)
)

// Location extracts a place from an "at/in <Capitalized phrase>" clause,
// rejecting matches that are themselves date/time expressions ("at 2pm",
// "in March", "on Monday" captured via "at Monday" phrasing).
func Location(text string) *string {
	for _, m := range locationRe.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(m[1])
		if candidate == "" {
			continue
		}
		if clockLikeRe.MatchString(candidate) {
			continue
		}
		// A capitalized weekday/month swallowed by the phrase pattern is
		// a date expression, not part of the place name.
		candidate = stripTimeTokens(candidate)
		if candidate == "" {
			continue
		}
		return &candidate
	}
	return nil
}
