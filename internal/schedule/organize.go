package schedule

import "time"

// Organize walks a merged busy-period list against the query window and
// returns the chronological free/busy slot sequence covering
// [windowStart, windowEnd) with no gaps and no overlaps.
//
// The periods must be sorted and non-overlapping (the output of Merge) and
// already clipped to the window by the caller; the calendar query is bounded
// by the same window, so no clipping happens here.
func Organize(merged []BusyPeriod, windowStart, windowEnd time.Time) []Slot {
	var slots []Slot
	cursor := windowStart

	for _, p := range merged {
		if cursor.Before(p.Start) {
			slots = append(slots, Slot{Start: cursor, End: p.Start})
		}
		slots = append(slots, Slot{Start: p.Start, End: p.End, Busy: true, Summary: p.Summary})
		cursor = p.End
	}

	if cursor.Before(windowEnd) {
		slots = append(slots, Slot{Start: cursor, End: windowEnd})
	}

	return slots
}
