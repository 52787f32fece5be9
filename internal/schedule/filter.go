package schedule

import "time"

// FilterHours clips slots to the daily active-hour window, dropping anything
// outside it and splitting slots that straddle the configured mid-day break.
//
// Each input slot is processed day by day in its own zone. Per active day it
// emits at most two pieces (before and after the break) carrying the slot's
// busy flag and summary unchanged. A slot entirely outside active hours,
// fully inside the break, or on a skipped weekend contributes nothing.
//
// Because a multi-day slot expands into one or two pieces per day, the
// output no longer strictly alternates free/busy.
func FilterHours(slots []Slot, w HourWindow, opts FilterOptions) []Slot {
	if opts.AllHours {
		return slots
	}

	var filtered []Slot
	for _, s := range slots {
		for day := range Days(s.Start, s.End) {
			if opts.WeekdaysOnly && isWeekend(day) {
				continue
			}

			lo := maxTime(s.Start, w.DayStart.On(day))
			hi := minTime(s.End, w.DayEnd.On(day))
			if !lo.Before(hi) {
				continue
			}

			if w.Break == nil {
				filtered = append(filtered, piece(s, lo, hi))
				continue
			}

			breakStart := w.Break.Start.On(day)
			breakEnd := w.Break.End.On(day)

			if lo.Before(breakStart) {
				filtered = append(filtered, piece(s, lo, minTime(hi, breakStart)))
			}
			if hi.After(breakEnd) {
				filtered = append(filtered, piece(s, maxTime(lo, breakEnd), hi))
			}
		}
	}

	return filtered
}

// piece copies a slot's identity onto a clipped sub-span.
func piece(s Slot, start, end time.Time) Slot {
	return Slot{Start: start, End: end, Busy: s.Busy, Summary: s.Summary}
}
