package usecase

import (
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/datemath"
)

var rruleFreq = map[datemath.Frequency]string{
	datemath.FrequencyDaily:   "DAILY",
	datemath.FrequencyWeekly:  "WEEKLY",
	datemath.FrequencyMonthly: "MONTHLY",
	datemath.FrequencyYearly:  "YEARLY",
}

var rruleDays = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// rruleFromPattern renders a recurring pattern as an RFC 5545 RRULE line.
// EndDate and Occurrences map to UNTIL and COUNT; the pattern type already
// guarantees at most one of them is set.
func rruleFromPattern(p nlp.RecurringPattern) string {
	parts := []string{"FREQ=" + rruleFreq[p.Frequency]}

	if p.Interval > 1 {
		parts = append(parts, fmt.Sprintf("INTERVAL=%d", p.Interval))
	}
	if len(p.DaysOfWeek) > 0 {
		days := make([]string, len(p.DaysOfWeek))
		for i, day := range p.DaysOfWeek {
			days[i] = rruleDays[day]
		}
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}
	if p.DayOfMonth > 0 {
		parts = append(parts, fmt.Sprintf("BYMONTHDAY=%d", p.DayOfMonth))
	}
	if p.EndDate != nil {
		parts = append(parts, "UNTIL="+p.EndDate.UTC().Format("20060102T150405Z"))
	} else if p.Occurrences > 0 {
		parts = append(parts, fmt.Sprintf("COUNT=%d", p.Occurrences))
	}

	return "RRULE:" + strings.Join(parts, ";")
}
