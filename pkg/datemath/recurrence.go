package datemath

import "time"

// Frequency is how often a recurrence repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ValidFrequency reports whether f is a member of the Frequency enum.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Recurrence describes a repeating schedule. EndDate and Count are
// terminal conditions; at most one is set.
type Recurrence struct {
	Frequency  Frequency
	Interval   int            // every N frequency units, >= 1
	DaysOfWeek []time.Weekday // weekly only; sorted ascending, deduplicated
	DayOfMonth int            // monthly only; 0 means anchor's day
	EndDate    *time.Time
	Count      int // 0 means unbounded
}

// NextOccurrence returns the first occurrence of r, anchored at anchor,
// that falls strictly after the given instant. The second return value is
// false once a terminal condition (EndDate or Count) rules out any further
// occurrence.
func NextOccurrence(r Recurrence, anchor, after time.Time) (time.Time, bool) {
	var next time.Time
	found := false
	forEachOccurrence(r, anchor, func(t time.Time) bool {
		if t.After(after) {
			next = t
			found = true
			return false
		}
		return true
	})
	return next, found
}

// OccurrencesInRange enumerates every occurrence of r intersecting the
// closed interval [rangeStart, rangeEnd], in ascending order.
func OccurrencesInRange(r Recurrence, anchor, rangeStart, rangeEnd time.Time) []time.Time {
	var out []time.Time
	forEachOccurrence(r, anchor, func(t time.Time) bool {
		if t.After(rangeEnd) {
			return false
		}
		if !t.Before(rangeStart) {
			out = append(out, t)
		}
		return true
	})
	return out
}

// maxWalk bounds the expansion walk so a pattern whose occurrences never
// reach the caller's threshold cannot loop forever on bad input.
const maxWalk = 100000

// forEachOccurrence walks the occurrences of r in order, applying the
// EndDate and Count caps, until fn returns false or a cap is reached.
func forEachOccurrence(r Recurrence, anchor time.Time, fn func(time.Time) bool) {
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}

	emitted := 0
	emit := func(t time.Time) bool {
		if r.Count > 0 && emitted >= r.Count {
			return false
		}
		if r.EndDate != nil && t.After(*r.EndDate) {
			return false
		}
		emitted++
		return fn(t)
	}

	if r.Frequency == FrequencyWeekly && len(r.DaysOfWeek) > 0 {
		forEachWeekday(r, anchor, interval, emit)
		return
	}

	for i := 0; i < maxWalk; i++ {
		var t time.Time
		switch r.Frequency {
		case FrequencyDaily:
			t = anchor.AddDate(0, 0, i*interval)
		case FrequencyWeekly:
			t = anchor.AddDate(0, 0, i*interval*7)
		case FrequencyMonthly:
			t = anchor.AddDate(0, i*interval, 0)
			if r.DayOfMonth > 0 {
				t = time.Date(t.Year(), t.Month(), r.DayOfMonth,
					t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
			}
		case FrequencyYearly:
			t = anchor.AddDate(i*interval, 0, 0)
		default:
			return
		}
		if !emit(t) {
			return
		}
	}
}

// forEachWeekday expands a weekly pattern with an explicit day-of-week set:
// within each active week (every interval-th week from the anchor's week),
// every listed weekday on or after the anchor is an occurrence.
func forEachWeekday(r Recurrence, anchor time.Time, interval int, emit func(time.Time) bool) {
	match := make(map[time.Weekday]bool, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		match[d] = true
	}

	weekStart := StartOfWeek(anchor)
	for w := 0; w < maxWalk; w++ {
		base := weekStart.AddDate(0, 0, w*interval*7)
		for d := 0; d < 7; d++ {
			day := base.AddDate(0, 0, d)
			if !match[day.Weekday()] {
				continue
			}
			t := time.Date(day.Year(), day.Month(), day.Day(),
				anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
			if t.Before(anchor) {
				continue
			}
			if !emit(t) {
				return
			}
		}
	}
}
