package schedule

import (
	"iter"
	"time"
)

// StartOfDay returns local midnight of t's calendar day, in t's zone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay returns local midnight of the calendar day after t. Constructed
// with time.Date rather than adding 24h so DST days resolve correctly.
func NextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// Days yields the local midnight of every calendar day touched by the span
// [from, to), in from's zone. The sequence is lazy and restartable; both
// FilterHours and ActiveDuration iterate it rather than re-deriving day
// boundaries ad hoc.
func Days(from, to time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for day := StartOfDay(from); day.Before(to); day = NextDay(day) {
			if !yield(day) {
				return
			}
		}
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
