package schedule

import "time"

// ActiveDuration computes the slot's duration excluding any time that falls
// inside the mid-day break, walking day by day across multi-day slots.
//
// This is independent of FilterHours: filtered slots already had break time
// removed physically, but totals must also be correct for unfiltered
// (all-hours) slots that still straddle a break conceptually.
func ActiveDuration(s Slot, brk *BreakWindow) time.Duration {
	if brk == nil {
		return s.Duration()
	}

	var total time.Duration
	for day := range Days(s.Start, s.End) {
		lo := maxTime(s.Start, day)
		hi := minTime(s.End, NextDay(day))
		if !lo.Before(hi) {
			continue
		}

		breakStart := brk.Start.On(day)
		breakEnd := brk.End.On(day)

		if lo.Before(breakEnd) && hi.After(breakStart) {
			if lo.Before(breakStart) {
				total += minTime(breakStart, hi).Sub(lo)
			}
			if hi.After(breakEnd) {
				total += hi.Sub(maxTime(breakEnd, lo))
			}
		} else {
			total += hi.Sub(lo)
		}
	}

	return total
}

// FilterShort drops free slots whose active duration is below min. Busy
// slots always pass; min <= 0 disables the filter.
func FilterShort(slots []Slot, min time.Duration, brk *BreakWindow) []Slot {
	if min <= 0 {
		return slots
	}

	filtered := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Busy || ActiveDuration(s, brk) >= min {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
