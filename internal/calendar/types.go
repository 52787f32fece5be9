package calendar

import (
	"errors"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/whenami/whenami/internal/schedule"
)

// ErrMalformedTime marks an unparseable instant in a calendar API response.
// Unlike a failed fetch this is not a degraded-mode condition: silently
// coercing a bad timestamp would corrupt the engine's ordering guarantees,
// so callers must treat it as fatal.
var ErrMalformedTime = errors.New("malformed calendar timestamp")

// ErrInvalidPeriod marks a busy period violating the source contract
// (start >= end). Rejected before the merge, and fatal for the same reason
// as ErrMalformedTime.
var ErrInvalidPeriod = errors.New("invalid busy period")

// Info describes a calendar as reported by the CalendarList API.
type Info struct {
	ID       string
	Summary  string
	TimeZone string
	Primary  bool
}

func toInfo(entry *calendar.CalendarListEntry) Info {
	if entry == nil {
		return Info{}
	}
	return Info{
		ID:       entry.Id,
		Summary:  entry.Summary,
		TimeZone: entry.TimeZone,
		Primary:  entry.Primary,
	}
}

// parseInstant parses an RFC3339 timestamp from an API response.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return t, nil
}

// periodsFromFreeBusy converts one calendar's freebusy response into busy
// periods. Zero-length periods are a source contract violation.
func periodsFromFreeBusy(cal *calendar.FreeBusyCalendar) ([]schedule.BusyPeriod, error) {
	if cal == nil {
		return nil, nil
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("freebusy query failed: %s", cal.Errors[0].Reason)
	}

	var periods []schedule.BusyPeriod
	for _, busy := range cal.Busy {
		start, err := parseInstant(busy.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseInstant(busy.End)
		if err != nil {
			return nil, err
		}

		p := schedule.BusyPeriod{Start: start, End: end}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

// periodsFromEvents converts listed events into busy periods carrying event
// titles. All-day events (date without a time) are skipped; they do not
// block time.
func periodsFromEvents(events []*calendar.Event) ([]schedule.BusyPeriod, error) {
	var periods []schedule.BusyPeriod
	for _, event := range events {
		if event == nil || event.Start == nil || event.End == nil {
			continue
		}
		if event.Start.DateTime == "" || event.End.DateTime == "" {
			continue
		}

		start, err := parseInstant(event.Start.DateTime)
		if err != nil {
			return nil, err
		}
		end, err := parseInstant(event.End.DateTime)
		if err != nil {
			return nil, err
		}

		summary := event.Summary
		if summary == "" {
			summary = "Untitled Event"
		}

		p := schedule.BusyPeriod{Start: start, End: end, Summary: summary}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}
