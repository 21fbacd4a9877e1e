package extract

import (
	"strings"
	"time"

	"calendar-assistant/internal/nlp"
	"calendar-assistant/pkg/datemath"
)

// TimeRange recognizes named ranges ("today", "this week", "next month")
// and computes the corresponding start/end pair. When no named range is
// present, a resolved single date/time widens to that full day.
func TimeRange(text string, now time.Time) *nlp.TimeRange {
	lowered := strings.ToLower(text)

	switch {
	case strings.Contains(lowered, "next week"):
		start := datemath.StartOfWeek(now.AddDate(0, 0, 7))
		return &nlp.TimeRange{Start: start, End: datemath.EndOfWeek(start)}
	case strings.Contains(lowered, "this week"):
		return &nlp.TimeRange{Start: datemath.StartOfWeek(now), End: datemath.EndOfWeek(now)}
	case strings.Contains(lowered, "next month"):
		start := datemath.StartOfMonth(datemath.Add(now, 1, datemath.UnitMonths))
		return &nlp.TimeRange{Start: start, End: datemath.EndOfMonth(start)}
	case strings.Contains(lowered, "this month"):
		return &nlp.TimeRange{Start: datemath.StartOfMonth(now), End: datemath.EndOfMonth(now)}
	case strings.Contains(lowered, "this year"):
		return &nlp.TimeRange{Start: datemath.StartOfYear(now), End: datemath.EndOfYear(now)}
	case strings.Contains(lowered, "tomorrow"):
		day := now.AddDate(0, 0, 1)
		return &nlp.TimeRange{Start: datemath.StartOfDay(day), End: datemath.EndOfDay(day)}
	case strings.Contains(lowered, "today") || strings.Contains(lowered, "tonight"):
		return &nlp.TimeRange{Start: datemath.StartOfDay(now), End: datemath.EndOfDay(now)}
	}

	if resolved := DateTime(text, now); resolved != nil {
		return &nlp.TimeRange{
			Start: datemath.StartOfDay(*resolved),
			End:   datemath.EndOfDay(*resolved),
		}
	}
	return nil
}
