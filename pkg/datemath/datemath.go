// Package datemath provides calendar arithmetic for the command
// interpretation pipeline: unit-based shifting, period boundaries, and
// recurrence expansion. All functions are pure; callers pass the reference
// instant explicitly so behavior is reproducible in tests.
package datemath

import "time"

// Unit is a calendar unit for arithmetic operations.
type Unit string

const (
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitDays    Unit = "days"
	UnitWeeks   Unit = "weeks"
	UnitMonths  Unit = "months"
	UnitYears   Unit = "years"
)

// Add shifts t by the signed amount of the given unit. Month and year
// arithmetic uses Go's native rollover (Jan 31 + 1 month = Mar 2/3).
func Add(t time.Time, amount int, unit Unit) time.Time {
	switch unit {
	case UnitMinutes:
		return t.Add(time.Duration(amount) * time.Minute)
	case UnitHours:
		return t.Add(time.Duration(amount) * time.Hour)
	case UnitDays:
		return t.AddDate(0, 0, amount)
	case UnitWeeks:
		return t.AddDate(0, 0, amount*7)
	case UnitMonths:
		return t.AddDate(0, amount, 0)
	case UnitYears:
		return t.AddDate(amount, 0, 0)
	}
	return t
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the Sunday that starts t's week.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the last instant of the Saturday that ends t's week.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns midnight of January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last instant of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// DiffIn returns the number of whole units between from and to.
// The result is negative when to precedes from.
func DiffIn(from, to time.Time, unit Unit) int {
	switch unit {
	case UnitMinutes:
		return int(to.Sub(from) / time.Minute)
	case UnitHours:
		return int(to.Sub(from) / time.Hour)
	case UnitDays:
		return int(to.Sub(from) / (24 * time.Hour))
	case UnitWeeks:
		return int(to.Sub(from) / (7 * 24 * time.Hour))
	case UnitMonths:
		return diffMonths(from, to)
	case UnitYears:
		return diffMonths(from, to) / 12
	}
	return 0
}

func diffMonths(from, to time.Time) int {
	sign := 1
	if to.Before(from) {
		from, to = to, from
		sign = -1
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	// Not a whole month until the day/time of month is reached.
	if to.Day() < from.Day() ||
		(to.Day() == from.Day() && to.Sub(StartOfDay(to)) < from.Sub(StartOfDay(from))) {
		months--
	}
	return sign * months
}
