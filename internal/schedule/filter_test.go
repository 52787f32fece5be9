package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workHours() HourWindow {
	return HourWindow{
		DayStart: MustClock("09:00"),
		DayEnd:   MustClock("17:00"),
		Break:    &BreakWindow{Start: MustClock("12:00"), End: MustClock("13:00")},
	}
}

func TestFilterHours_AllHoursPassthrough(t *testing.T) {
	slots := []Slot{{Start: at(t, 1, 0), End: at(t, 23, 0)}}

	filtered := FilterHours(slots, workHours(), FilterOptions{AllHours: true})

	assert.Equal(t, slots, filtered)
}

func TestFilterHours_SplitsAcrossBreak(t *testing.T) {
	slots := []Slot{{Start: at(t, 11, 30), End: at(t, 13, 30), Busy: true, Summary: "Offsite"}}

	filtered := FilterHours(slots, workHours(), FilterOptions{})

	require.Len(t, filtered, 2)
	assert.Equal(t, Slot{Start: at(t, 11, 30), End: at(t, 12, 0), Busy: true, Summary: "Offsite"}, filtered[0])
	assert.Equal(t, Slot{Start: at(t, 13, 0), End: at(t, 13, 30), Busy: true, Summary: "Offsite"}, filtered[1])
}

func TestFilterHours_SlotInsideBreakDiscarded(t *testing.T) {
	slots := []Slot{{Start: at(t, 12, 10), End: at(t, 12, 50)}}

	filtered := FilterHours(slots, workHours(), FilterOptions{})

	assert.Empty(t, filtered)
}

func TestFilterHours_ClipsToDayWindow(t *testing.T) {
	slots := []Slot{{Start: at(t, 6, 0), End: at(t, 20, 0)}}

	filtered := FilterHours(slots, workHours(), FilterOptions{})

	require.Len(t, filtered, 2)
	assert.Equal(t, at(t, 9, 0), filtered[0].Start)
	assert.Equal(t, at(t, 12, 0), filtered[0].End)
	assert.Equal(t, at(t, 13, 0), filtered[1].Start)
	assert.Equal(t, at(t, 17, 0), filtered[1].End)
}

func TestFilterHours_SlotOutsideActiveHoursDiscarded(t *testing.T) {
	slots := []Slot{
		{Start: at(t, 5, 0), End: at(t, 7, 0)},
		{Start: at(t, 18, 0), End: at(t, 22, 0)},
	}

	filtered := FilterHours(slots, workHours(), FilterOptions{})

	assert.Empty(t, filtered)
}

func TestFilterHours_NoBreakConfigured(t *testing.T) {
	w := HourWindow{DayStart: MustClock("08:00"), DayEnd: MustClock("22:00")}
	slots := []Slot{{Start: at(t, 7, 0), End: at(t, 23, 0), Busy: true}}

	filtered := FilterHours(slots, w, FilterOptions{})

	require.Len(t, filtered, 1)
	assert.Equal(t, at(t, 8, 0), filtered[0].Start)
	assert.Equal(t, at(t, 22, 0), filtered[0].End)
	assert.True(t, filtered[0].Busy)
}

func TestFilterHours_MultiDayExpansion(t *testing.T) {
	// Monday 2026-09-07 06:00 through Wednesday 20:00: two pieces per day.
	start := time.Date(2026, time.September, 7, 6, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 9, 20, 0, 0, 0, time.UTC)

	filtered := FilterHours([]Slot{{Start: start, End: end}}, workHours(), FilterOptions{})

	require.Len(t, filtered, 6)
	for _, s := range filtered {
		assert.True(t, s.Start.Before(s.End))
		// No piece escapes the daily window.
		dayStart := MustClock("09:00").On(s.Start)
		dayEnd := MustClock("17:00").On(s.Start)
		assert.False(t, s.Start.Before(dayStart))
		assert.False(t, s.End.After(dayEnd))
	}
}

func TestFilterHours_WeekdaysOnlySkipsWeekend(t *testing.T) {
	// Friday 2026-09-11 through Monday 2026-09-14.
	start := time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	filtered := FilterHours([]Slot{{Start: start, End: end}}, workHours(), FilterOptions{WeekdaysOnly: true})

	require.Len(t, filtered, 4) // Friday and Monday, two pieces each
	for _, s := range filtered {
		wd := s.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestFilterHours_DaysFollowSlotZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring-forward day (2026-03-08): the 09:00-17:00 window still resolves
	// to local wall-clock times even though the day is 23 hours long.
	start := time.Date(2026, time.March, 8, 0, 0, 0, 0, loc)
	end := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)
	w := HourWindow{DayStart: MustClock("09:00"), DayEnd: MustClock("17:00")}

	filtered := FilterHours([]Slot{{Start: start, End: end}}, w, FilterOptions{})

	require.Len(t, filtered, 1)
	assert.Equal(t, 9, filtered[0].Start.Hour())
	assert.Equal(t, 17, filtered[0].End.Hour())
}
