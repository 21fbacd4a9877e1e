package extract

import (
	"regexp"
	"strings"
)

var (
	namedContactRe = regexp.MustCompile(`\b(?:contact|person)\s+named\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)?)`)
	possessiveRe   = regexp.MustCompile(`\b([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)?)'s\s+(?:email|phone|number|address|contact)`)
)

// ContactName extracts a person reference from "contact/person named NAME"
// or possessive "NAME's email/phone" forms.
func ContactName(text string) *string {
	for _, re := range []*regexp.Regexp{namedContactRe, possessiveRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(stripTimeTokens(m[1]))
			if name != "" {
				return &name
			}
		}
	}
	return nil
}
