package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, time.September, 7, hour, min, 0, 0, time.UTC)
}

func TestMerge_OverlappingSources(t *testing.T) {
	// Two sources with overlapping periods collapse into one run.
	a := []BusyPeriod{{Start: at(t, 9, 0), End: at(t, 10, 0)}}
	b := []BusyPeriod{{Start: at(t, 9, 30), End: at(t, 10, 30)}}

	merged := Merge([][]BusyPeriod{a, b})

	assert.Len(t, merged, 1)
	assert.Equal(t, at(t, 9, 0), merged[0].Start)
	assert.Equal(t, at(t, 10, 30), merged[0].End)
}

func TestMerge_BackToBackPeriodsCollapse(t *testing.T) {
	// End == next start is treated as overlap: the comparison that starts a
	// new run is strict Before, so touching periods merge.
	a := []BusyPeriod{{Start: at(t, 9, 0), End: at(t, 10, 0)}}
	b := []BusyPeriod{{Start: at(t, 10, 0), End: at(t, 11, 0)}}

	merged := Merge([][]BusyPeriod{a, b})

	assert.Len(t, merged, 1)
	assert.Equal(t, at(t, 9, 0), merged[0].Start)
	assert.Equal(t, at(t, 11, 0), merged[0].End)
}

func TestMerge_DisjointPeriodsStaySeparate(t *testing.T) {
	a := []BusyPeriod{{Start: at(t, 9, 0), End: at(t, 10, 0)}}
	b := []BusyPeriod{{Start: at(t, 10, 1), End: at(t, 11, 0)}}

	merged := Merge([][]BusyPeriod{a, b})

	assert.Len(t, merged, 2)
}

func TestMerge_SummaryCombination(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected string
	}{
		{name: "both named", first: "Standup", second: "1:1", expected: "Standup / 1:1"},
		{name: "only incoming named", first: "", second: "1:1", expected: "1:1"},
		{name: "only current named", first: "Standup", second: "", expected: "Standup"},
		{name: "neither named", first: "", second: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge([][]BusyPeriod{
				{{Start: at(t, 9, 0), End: at(t, 10, 0), Summary: tt.first}},
				{{Start: at(t, 9, 30), End: at(t, 10, 30), Summary: tt.second}},
			})

			assert.Len(t, merged, 1)
			assert.Equal(t, tt.expected, merged[0].Summary)
		})
	}
}

func TestMerge_Idempotence(t *testing.T) {
	src := []BusyPeriod{
		{Start: at(t, 9, 0), End: at(t, 10, 0), Summary: "a"},
		{Start: at(t, 11, 0), End: at(t, 12, 0), Summary: "b"},
	}
	once := Merge([][]BusyPeriod{src})

	// Merging an already-merged list with itself yields the same list.
	twice := Merge([][]BusyPeriod{once, once})

	assert.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].Start, twice[i].Start)
		assert.Equal(t, once[i].End, twice[i].End)
	}
}

func TestMerge_SourceOrderIrrelevant(t *testing.T) {
	a := []BusyPeriod{
		{Start: at(t, 9, 0), End: at(t, 10, 0)},
		{Start: at(t, 14, 0), End: at(t, 15, 0)},
	}
	b := []BusyPeriod{
		{Start: at(t, 9, 30), End: at(t, 10, 30)},
		{Start: at(t, 16, 0), End: at(t, 17, 0)},
	}

	ab := Merge([][]BusyPeriod{a, b})
	ba := Merge([][]BusyPeriod{b, a})

	assert.Equal(t, len(ab), len(ba))
	for i := range ab {
		assert.Equal(t, ab[i].Start, ba[i].Start)
		assert.Equal(t, ab[i].End, ba[i].End)
	}
}

func TestMerge_EmptyInput(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([][]BusyPeriod{{}, {}}))
}
