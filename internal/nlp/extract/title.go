package extract

import (
	"regexp"
	"strings"
)

const placeholderTitle = "New Event"

var (
	quotedRe = regexp.MustCompile(`["“]([^"”]+)["”]|'([^']+)'`)

	// Leading command verbs and articles.
	commandPrefixRe = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:schedule|create|add|book|plan|set\s+up|organi[sz]e|arrange|new)\s+(?:(?:a|an|the)\b\s*)?`)

	// Everything from the first trailing clause onwards is scheduling
	// detail, not title material.
	trailingClauseRe = regexp.MustCompile(`(?i)\s+(?:with|at|on|in|for|from|by|to|every|until|tomorrow|today|tonight|next|this)\b.*$`)
)

// Title extracts the event title: a quoted substring verbatim if present,
// otherwise the input stripped of command keywords and trailing
// preposition-led clauses, otherwise a fixed placeholder.
func Title(text string) *string {
	if m := quotedRe.FindStringSubmatch(text); m != nil {
		title := m[1]
		if title == "" {
			title = m[2]
		}
		title = strings.TrimSpace(title)
		if title != "" {
			return &title
		}
	}

	stripped := commandPrefixRe.ReplaceAllString(text, "")
	stripped = trailingClauseRe.ReplaceAllString(stripped, "")
	stripped = strings.TrimSpace(strings.Trim(stripped, " .,!?"))

	if stripped == "" {
		placeholder := placeholderTitle
		return &placeholder
	}
	return &stripped
}
