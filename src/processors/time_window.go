package processors

import (
	"math"
	"time"
)

// TimeWindow holds every interval one report run needs: the normalized
// current window, the equal-length comparison window immediately before it,
// and the calendar month containing the window's start (used for cost
// apportionment).
type TimeWindow struct {
	CurrentStart time.Time
	CurrentEnd   time.Time

	PreviousStart time.Time
	PreviousEnd   time.Time

	MonthStart time.Time
	MonthEnd   time.Time

	// PeriodDays is the inclusive day count of the current window: a
	// single-day window has PeriodDays == 1.
	PeriodDays  int
	DaysInMonth int
}

// ResolveTimeWindow normalizes a user-chosen [from, to] range. A zero `to`
// defaults to `from`. The comparison window is shifted back by PeriodDays
// days, not by calendar month, so it always has the exact same length.
//
// The apportionment month is always the month containing `from`, even when
// the window crosses a month boundary.
func ResolveTimeWindow(from, to time.Time) TimeWindow {
	if to.IsZero() {
		to = from
	}

	currentStart := startOfDay(from)
	currentEnd := endOfDay(to)
	periodDays := daysBetween(currentStart, startOfDay(to)) + 1

	previousEnd := endOfDay(currentStart.AddDate(0, 0, -1))
	previousStart := startOfDay(currentStart.AddDate(0, 0, -periodDays))

	monthStart := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	lastOfMonth := monthStart.AddDate(0, 1, -1)

	return TimeWindow{
		CurrentStart:  currentStart,
		CurrentEnd:    currentEnd,
		PreviousStart: previousStart,
		PreviousEnd:   previousEnd,
		MonthStart:    monthStart,
		MonthEnd:      endOfDay(lastOfMonth),
		PeriodDays:    periodDays,
		DaysInMonth:   lastOfMonth.Day(),
	}
}

// contains reports whether t falls inside [start, end], inclusive on both
// boundaries.
func contains(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// daysBetween counts whole calendar days from a to b, both at start-of-day.
// Rounding absorbs DST transitions that make a "day" 23 or 25 hours long.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
