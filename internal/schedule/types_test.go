package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{input: "09:00", want: Clock{Hour: 9}},
		{input: "23:59", want: Clock{Hour: 23, Minute: 59}},
		{input: "00:00", want: Clock{}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestClockOn_AnchorsToDayInZone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	day := time.Date(2026, time.September, 7, 15, 42, 11, 0, loc)
	anchored := MustClock("09:30").On(day)

	assert.Equal(t, time.Date(2026, time.September, 7, 9, 30, 0, 0, loc), anchored)
}

func TestHourWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  HourWindow
		wantErr bool
	}{
		{
			name:   "valid without break",
			window: HourWindow{DayStart: MustClock("09:00"), DayEnd: MustClock("17:00")},
		},
		{
			name:   "valid with break",
			window: workHours(),
		},
		{
			name:    "day start after day end",
			window:  HourWindow{DayStart: MustClock("18:00"), DayEnd: MustClock("09:00")},
			wantErr: true,
		},
		{
			name:    "day start equals day end",
			window:  HourWindow{DayStart: MustClock("09:00"), DayEnd: MustClock("09:00")},
			wantErr: true,
		},
		{
			name: "inverted break",
			window: HourWindow{
				DayStart: MustClock("09:00"), DayEnd: MustClock("17:00"),
				Break: &BreakWindow{Start: MustClock("13:00"), End: MustClock("12:00")},
			},
			wantErr: true,
		},
		{
			name: "break outside day window",
			window: HourWindow{
				DayStart: MustClock("09:00"), DayEnd: MustClock("17:00"),
				Break: &BreakWindow{Start: MustClock("17:30"), End: MustClock("18:00")},
			},
			wantErr: true,
		},
		{
			name: "break touching both edges",
			window: HourWindow{
				DayStart: MustClock("09:00"), DayEnd: MustClock("17:00"),
				Break: &BreakWindow{Start: MustClock("09:00"), End: MustClock("17:00")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBusyPeriodValidate(t *testing.T) {
	valid := BusyPeriod{Start: at(t, 9, 0), End: at(t, 10, 0)}
	assert.NoError(t, valid.Validate())

	zero := BusyPeriod{Start: at(t, 9, 0), End: at(t, 9, 0)}
	assert.Error(t, zero.Validate())

	inverted := BusyPeriod{Start: at(t, 10, 0), End: at(t, 9, 0)}
	assert.Error(t, inverted.Validate())
}

func TestSlotIn_PreservesInstant(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	s := Slot{Start: at(t, 12, 0), End: at(t, 13, 0), Busy: true}
	converted := s.In(loc)

	assert.True(t, s.Start.Equal(converted.Start))
	assert.True(t, s.End.Equal(converted.End))
	assert.Equal(t, loc, converted.Start.Location())
	assert.True(t, converted.Busy)
}
