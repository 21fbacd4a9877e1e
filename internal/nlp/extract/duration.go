package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Hours and minutes in one pattern so the first match in scan order
	// wins when several duration-like substrings appear.
	durationRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)[\s-]*(hours?|hrs?|minutes?|mins?)\b`)
	anHourRe   = regexp.MustCompile(`\b(?:an|one)\s+hour\b`)
	halfHourRe = regexp.MustCompile(`\bhalf\s+an?\s+hour\b`)

	meetingNounRe = regexp.MustCompile(`\b(?:meeting|appointment|call|standup|sync|session|interview|demo|lunch|dinner|review|catch[- ]?up)\b`)
)

const defaultMeetingMinutes = 60

// Duration returns the event length in minutes. Explicit quantities
// (including fractional hours) win; otherwise a generic meeting noun plus a
// resolved date/time defaults to 60 minutes.
func Duration(text string, hasDateTime bool) *int {
	lowered := strings.ToLower(text)

	if m := durationRe.FindStringSubmatch(lowered); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil && amount >= 0 {
			minutes := int(math.Round(amount))
			if strings.HasPrefix(m[2], "h") {
				minutes = int(math.Round(amount * 60))
			}
			return &minutes
		}
	}
	if halfHourRe.MatchString(lowered) {
		minutes := 30
		return &minutes
	}
	if anHourRe.MatchString(lowered) {
		minutes := 60
		return &minutes
	}

	if hasDateTime && meetingNounRe.MatchString(lowered) {
		minutes := defaultMeetingMinutes
		return &minutes
	}
	return nil
}
