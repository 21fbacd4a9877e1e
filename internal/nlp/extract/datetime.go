// Package extract holds one pure extractor per entity kind. Each takes the
// utterance (plus the reference instant where needed) and returns an
// optional value; a non-match is an absent field, never an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"calendar-assistant/pkg/datemath"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	// "at 2pm", "at 2:30 pm", "2pm", "at 14:00"
	clockAtRe   = regexp.MustCompile(`\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	clockBareRe = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	clock24Re   = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

	nextWeekdayRe = regexp.MustCompile(`\bnext\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	onWeekdayRe   = regexp.MustCompile(`\b(?:on\s+|this\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	inAmountRe    = regexp.MustCompile(`\bin\s+(\d+)\s+(day|days|week|weeks|month|months)\b`)
	numericDateRe = regexp.MustCompile(`\b(?:on\s+)?(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`)
)

// DateTime resolves the single instant referenced by text relative to now.
// A time-of-day without a date cue anchors to the reference day; a date cue
// without a time-of-day resolves to that day's current clock time. Returns
// nil when neither is present.
func DateTime(text string, now time.Time) *time.Time {
	lowered := strings.ToLower(text)

	base, hasDate := dateCue(lowered, now)
	hour, minute, hasTime := timeOfDay(lowered)

	if !hasDate && !hasTime {
		return nil
	}
	if !hasDate {
		base = now
	}

	resolved := base
	if hasTime {
		resolved = time.Date(base.Year(), base.Month(), base.Day(),
			hour, minute, 0, 0, base.Location())
	}
	return &resolved
}

// timeOfDay finds an explicit clock expression. The "at H(:MM)(am|pm)" form
// is preferred; a bare "H(:MM)am/pm" and a 24-hour "HH:MM" are fallbacks.
func timeOfDay(lowered string) (hour, minute int, ok bool) {
	for _, re := range []*regexp.Regexp{clockAtRe, clockBareRe} {
		if m := re.FindStringSubmatch(lowered); m != nil {
			hour, _ = strconv.Atoi(m[1])
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			if hour > 23 || minute > 59 {
				continue
			}
			switch m[3] {
			case "pm":
				if hour < 12 {
					hour += 12
				}
			case "am":
				if hour == 12 {
					hour = 0
				}
			case "":
				// "at 3" with no period and no minutes is too ambiguous
				// to treat as a clock time.
				if m[2] == "" {
					continue
				}
			}
			return hour, minute, true
		}
	}
	if m := clock24Re.FindStringSubmatch(lowered); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return hour, minute, true
		}
	}
	return 0, 0, false
}

// dateCue finds a date-anchoring expression and returns the anchored day
// (at now's clock time, to be overridden by any time-of-day).
func dateCue(lowered string, now time.Time) (time.Time, bool) {
	if strings.Contains(lowered, "tomorrow") {
		return now.AddDate(0, 0, 1), true
	}
	if strings.Contains(lowered, "today") || strings.Contains(lowered, "tonight") {
		return now, true
	}
	if m := nextWeekdayRe.FindStringSubmatch(lowered); m != nil {
		return nextWeekday(now, weekdays[m[1]], true), true
	}
	if m := inAmountRe.FindStringSubmatch(lowered); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return datemath.Add(now, amount, datemath.UnitDays), true
		case strings.HasPrefix(m[2], "week"):
			return datemath.Add(now, amount, datemath.UnitWeeks), true
		default:
			return datemath.Add(now, amount, datemath.UnitMonths), true
		}
	}
	if m := numericDateRe.FindStringSubmatch(lowered); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day,
				now.Hour(), now.Minute(), 0, 0, now.Location()), true
		}
	}
	if m := onWeekdayRe.FindStringSubmatch(lowered); m != nil {
		// A bare weekday after "every" is a recurrence day, not a date.
		if !regexp.MustCompile(`\bevery\s+(?:\w+\s+)?` + m[1]).MatchString(lowered) {
			return nextWeekday(now, weekdays[m[1]], false), true
		}
	}
	return now, false
}

// nextWeekday returns the upcoming instance of target. With strict set
// ("next Monday" said on a Monday), a zero or negative offset always rolls
// a full week forward; a bare weekday mention keeps the current day.
func nextWeekday(now time.Time, target time.Weekday, strict bool) time.Time {
	offset := int(target - now.Weekday())
	if offset < 0 || (strict && offset == 0) {
		offset += 7
	}
	return now.AddDate(0, 0, offset)
}
