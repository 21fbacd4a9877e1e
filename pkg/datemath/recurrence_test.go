package datemath_test

import (
	"testing"
	"time"

	"calendar-assistant/pkg/datemath"
)

func TestNextOccurrenceDaily(t *testing.T) {
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	r := datemath.Recurrence{Frequency: datemath.FrequencyDaily, Interval: 1}
	next, ok := datemath.NextOccurrence(r, anchor, anchor)
	if !ok {
		t.Fatalf("expected a next occurrence")
	}
	if want := anchor.AddDate(0, 0, 1); !next.Equal(want) {
		t.Errorf("daily next = %v, want %v", next, want)
	}

	r.Interval = 3
	next, _ = datemath.NextOccurrence(r, anchor, anchor.AddDate(0, 0, 4))
	if want := anchor.AddDate(0, 0, 6); !next.Equal(want) {
		t.Errorf("every-3-days next after +4d = %v, want %v", next, want)
	}
}

func TestNextOccurrenceWeeklyOnMondayAnchoredMonday(t *testing.T) {
	// June 2 2025 is a Monday. The next Monday occurrence after the anchor
	// must be exactly one week out, never the anchor day itself.
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{
		Frequency:  datemath.FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday},
	}

	next, ok := datemath.NextOccurrence(r, anchor, anchor)
	if !ok {
		t.Fatalf("expected a next occurrence")
	}
	if want := anchor.AddDate(0, 0, 7); !next.Equal(want) {
		t.Errorf("next = %v, want exactly 7 days later (%v)", next, want)
	}
}

func TestNextOccurrenceWeeklyMultipleDays(t *testing.T) {
	// Anchor Monday; pattern on Mon+Thu.
	anchor := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{
		Frequency:  datemath.FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday, time.Thursday},
	}

	next, _ := datemath.NextOccurrence(r, anchor, anchor)
	if want := anchor.AddDate(0, 0, 3); !next.Equal(want) {
		t.Errorf("next = %v, want Thursday (%v)", next, want)
	}
}

func TestNextOccurrenceMonthlyDayOfMonth(t *testing.T) {
	anchor := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{
		Frequency:  datemath.FrequencyMonthly,
		Interval:   1,
		DayOfMonth: 15,
	}

	next, _ := datemath.NextOccurrence(r, anchor, anchor)
	if want := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC); !next.Equal(want) {
		t.Errorf("monthly next = %v, want %v", next, want)
	}
}

func TestNextOccurrenceRespectsCount(t *testing.T) {
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{Frequency: datemath.FrequencyDaily, Interval: 1, Count: 3}

	// Occurrences are June 2, 3, 4. Nothing exists after June 4.
	if _, ok := datemath.NextOccurrence(r, anchor, anchor.AddDate(0, 0, 3)); ok {
		t.Errorf("expected no occurrence past the count cap")
	}

	next, ok := datemath.NextOccurrence(r, anchor, anchor.AddDate(0, 0, 1))
	if !ok || !next.Equal(anchor.AddDate(0, 0, 2)) {
		t.Errorf("next within cap = %v (ok=%v), want %v", next, ok, anchor.AddDate(0, 0, 2))
	}
}

func TestNextOccurrenceRespectsEndDate(t *testing.T) {
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := anchor.AddDate(0, 0, 2)
	r := datemath.Recurrence{Frequency: datemath.FrequencyDaily, Interval: 1, EndDate: &end}

	if _, ok := datemath.NextOccurrence(r, anchor, end); ok {
		t.Errorf("expected no occurrence past the end date")
	}
}

func TestOccurrencesInRange(t *testing.T) {
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{Frequency: datemath.FrequencyDaily, Interval: 2}

	rangeStart := anchor.AddDate(0, 0, 1)
	rangeEnd := anchor.AddDate(0, 0, 9)
	got := datemath.OccurrencesInRange(r, anchor, rangeStart, rangeEnd)

	want := []time.Time{
		anchor.AddDate(0, 0, 2),
		anchor.AddDate(0, 0, 4),
		anchor.AddDate(0, 0, 6),
		anchor.AddDate(0, 0, 8),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d = %v, want %v", i, got[i], want[i])
		}
		if got[i].Before(rangeStart) || got[i].After(rangeEnd) {
			t.Errorf("occurrence %d (%v) outside [%v, %v]", i, got[i], rangeStart, rangeEnd)
		}
	}
}

func TestOccurrencesInRangeIncludesBoundaries(t *testing.T) {
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{Frequency: datemath.FrequencyDaily, Interval: 1}

	got := datemath.OccurrencesInRange(r, anchor, anchor, anchor.AddDate(0, 0, 1))
	if len(got) != 2 {
		t.Fatalf("closed interval should include both boundary occurrences, got %v", got)
	}
}

func TestOccurrencesInRangeNeverExceedsCount(t *testing.T) {
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r := datemath.Recurrence{Frequency: datemath.FrequencyDaily, Interval: 1, Count: 5}

	got := datemath.OccurrencesInRange(r, anchor, anchor, anchor.AddDate(0, 1, 0))
	if len(got) != 5 {
		t.Errorf("got %d occurrences, want count cap of 5", len(got))
	}
}
