package schedule

import (
	"fmt"
	"time"
)

// BusyPeriod is an interval during which a calendar reports its owner as
// unavailable. Summary carries the event title when the source provides one.
type BusyPeriod struct {
	Start   time.Time
	End     time.Time
	Summary string
}

// Validate rejects degenerate periods. A period with Start >= End is a
// contract violation by the calendar source and must not reach the merge.
func (p BusyPeriod) Validate() error {
	if !p.Start.Before(p.End) {
		return fmt.Errorf("busy period start %s is not before end %s",
			p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
	}
	return nil
}

// Duration returns the elapsed span of the period.
func (p BusyPeriod) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Slot is a contiguous free or busy interval in the organized output.
type Slot struct {
	Start   time.Time
	End     time.Time
	Busy    bool
	Summary string
}

// Duration returns the elapsed span of the slot, ignoring any break.
// Use ActiveDuration for break-aware accounting.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// In returns a copy of the slot with both instants converted to loc.
// The instants themselves are unchanged; only the display zone moves.
func (s Slot) In(loc *time.Location) Slot {
	s.Start = s.Start.In(loc)
	s.End = s.End.In(loc)
	return s
}

// Clock is a wall-clock time of day with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// MustClock is a test and default-value helper that panics on a malformed
// time of day.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is earlier in the day than o.
func (c Clock) Before(o Clock) bool {
	return c.minutes() < o.minutes()
}

// After reports whether c is later in the day than o.
func (c Clock) After(o Clock) bool {
	return c.minutes() > o.minutes()
}

// On anchors the clock time to the calendar day of t, in t's zone.
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// BreakWindow is a mid-day interval excluded from active hours.
type BreakWindow struct {
	Start Clock
	End   Clock
}

// HourWindow is the daily active-hour configuration for a profile.
// Break is nil when no mid-day break is configured.
type HourWindow struct {
	DayStart Clock
	DayEnd   Clock
	Break    *BreakWindow
}

// Validate enforces the window invariants: DayStart < DayEnd, and any break
// must satisfy DayStart <= Break.Start < Break.End <= DayEnd. Windows are
// validated once at configuration load; the engine never sees an invalid one.
func (w HourWindow) Validate() error {
	if !w.DayStart.Before(w.DayEnd) {
		return fmt.Errorf("day start %s must be before day end %s", w.DayStart, w.DayEnd)
	}
	if w.Break == nil {
		return nil
	}
	if !w.Break.Start.Before(w.Break.End) {
		return fmt.Errorf("break start %s must be before break end %s", w.Break.Start, w.Break.End)
	}
	if w.DayStart.After(w.Break.Start) || w.Break.End.After(w.DayEnd) {
		return fmt.Errorf("break %s-%s must lie within day window %s-%s",
			w.Break.Start, w.Break.End, w.DayStart, w.DayEnd)
	}
	return nil
}

// FilterOptions selects how FilterHours treats the input slots.
type FilterOptions struct {
	// WeekdaysOnly skips Saturdays and Sundays entirely.
	WeekdaysOnly bool

	// AllHours disables hour-window filtering altogether; slots pass
	// through unchanged.
	AllHours bool
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
