package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/datemath"
)

var (
	recurrenceGateRe = regexp.MustCompile(`\b(?:every|daily|weekly|monthly|yearly|annually|recurring|each)\b`)

	everyIntervalRe = regexp.MustCompile(`\bevery\s+(\d+)\s+(days?|weeks?|months?|years?)\b`)
	everyUnitRe     = regexp.MustCompile(`\bevery\s+(day|week|month|year)\b`)

	// "every Monday", "every monday and wednesday"
	everyWeekdayRe = regexp.MustCompile(`\b(?:every|each)\s+((?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)(?:(?:\s*,\s*|\s+and\s+)(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday))*)`)
	weekdayNameRe  = regexp.MustCompile(`sunday|monday|tuesday|wednesday|thursday|friday|saturday`)

	dayOfMonthRe  = regexp.MustCompile(`\bon\s+the\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	untilRe       = regexp.MustCompile(`\buntil\s+(.+)$`)
	occurrencesRe = regexp.MustCompile(`\bfor\s+(\d+)\s+(?:times|occurrences)\b`)
)

// Recurrence extracts a repeating-schedule pattern. It triggers only when a
// recurrence keyword is present; the terminal condition is either an
// "until <date>" end date or a "for N times" occurrence cap, never both.
func Recurrence(text string, now time.Time) *nlp.RecurringPattern {
	lowered := strings.ToLower(text)
	if !recurrenceGateRe.MatchString(lowered) {
		return nil
	}

	pattern := &nlp.RecurringPattern{Interval: 1}

	switch {
	case strings.Contains(lowered, "daily"):
		pattern.Frequency = datemath.FrequencyDaily
	case strings.Contains(lowered, "weekly"):
		pattern.Frequency = datemath.FrequencyWeekly
	case strings.Contains(lowered, "monthly"):
		pattern.Frequency = datemath.FrequencyMonthly
	case strings.Contains(lowered, "yearly"), strings.Contains(lowered, "annually"):
		pattern.Frequency = datemath.FrequencyYearly
	}

	if m := everyIntervalRe.FindStringSubmatch(lowered); m != nil {
		pattern.Interval, _ = strconv.Atoi(m[1])
		if pattern.Interval < 1 {
			pattern.Interval = 1
		}
		pattern.Frequency = unitFrequency(m[2])
	} else if m := everyUnitRe.FindStringSubmatch(lowered); m != nil {
		pattern.Frequency = unitFrequency(m[1])
	}

	if m := everyWeekdayRe.FindStringSubmatch(lowered); m != nil {
		pattern.Frequency = datemath.FrequencyWeekly
		pattern.DaysOfWeek = parseWeekdaySet(m[1])
	}

	if m := dayOfMonthRe.FindStringSubmatch(lowered); m != nil {
		if day, _ := strconv.Atoi(m[1]); day >= 1 && day <= 31 {
			pattern.DayOfMonth = day
			if pattern.Frequency == "" {
				pattern.Frequency = datemath.FrequencyMonthly
			}
		}
	}

	if pattern.Frequency == "" {
		return nil
	}

	if m := untilRe.FindStringSubmatch(lowered); m != nil {
		if end := DateTime(m[1], now); end != nil {
			pattern.EndDate = end
		}
	}
	// EndDate and Occurrences are mutually exclusive; the until-clause wins
	// when both forms appear.
	if pattern.EndDate == nil {
		if m := occurrencesRe.FindStringSubmatch(lowered); m != nil {
			if count, _ := strconv.Atoi(m[1]); count > 0 {
				pattern.Occurrences = count
			}
		}
	}

	return pattern
}

func unitFrequency(unit string) datemath.Frequency {
	switch {
	case strings.HasPrefix(unit, "day"):
		return datemath.FrequencyDaily
	case strings.HasPrefix(unit, "week"):
		return datemath.FrequencyWeekly
	case strings.HasPrefix(unit, "month"):
		return datemath.FrequencyMonthly
	default:
		return datemath.FrequencyYearly
	}
}

// parseWeekdaySet converts a matched weekday clause into a deduplicated,
// ascending weekday list.
func parseWeekdaySet(clause string) []time.Weekday {
	seen := make(map[time.Weekday]bool)
	var days []time.Weekday
	for _, name := range weekdayNameRe.FindAllString(clause, -1) {
		day := weekdays[name]
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
