// Package daterange resolves CLI date selections into a concrete
// [start, end) query window anchored to a timezone.
package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Selection mirrors the mutually exclusive date flags. The zero value means
// "today".
type Selection struct {
	Today        bool
	Tomorrow     bool
	NextWeek     bool
	NextTwoWeeks bool
	Date         string // single day, DD/MM/YYYY or DD-MM-YYYY, 2-digit years accepted
	Range        string // "start,end" in the same formats
}

// Resolve turns a selection into a half-open window in loc. Day windows run
// from local midnight to the next local midnight.
func Resolve(sel Selection, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch {
	case sel.Tomorrow:
		tomorrow := today.AddDate(0, 0, 1)
		return tomorrow, tomorrow.AddDate(0, 0, 1), nil

	case sel.NextWeek:
		monday := today.AddDate(0, 0, daysUntilNextMonday(today))
		return monday, monday.AddDate(0, 0, 7), nil

	case sel.NextTwoWeeks:
		return today, today.AddDate(0, 0, 14), nil

	case sel.Range != "":
		startStr, endStr, ok := strings.Cut(sel.Range, ",")
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date range %q: expected 'DD/MM/YYYY,DD/MM/YYYY'", sel.Range)
		}
		start, err := parseDay(strings.TrimSpace(startStr), loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := parseDay(strings.TrimSpace(endStr), loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = end.AddDate(0, 0, 1)
		if !start.Before(end) {
			return time.Time{}, time.Time{}, fmt.Errorf("date range %q ends before it starts", sel.Range)
		}
		return start, end, nil

	case sel.Date != "":
		day, err := parseDay(strings.TrimSpace(sel.Date), loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return day, day.AddDate(0, 0, 1), nil

	default:
		// --today and the no-flag default.
		return today, today.AddDate(0, 0, 1), nil
	}
}

// parseDay parses DD/MM/YYYY with - or / separators and 2- or 4-digit years,
// returning local midnight of that day.
func parseDay(s string, loc *time.Location) (time.Time, error) {
	normalized := strings.ReplaceAll(s, "/", "-")

	for _, layout := range []string{"02-01-2006", "02-01-06"} {
		if d, err := time.ParseInLocation(layout, normalized, loc); err == nil {
			return d, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q: use DD/MM/YYYY, DD-MM-YYYY, DD/MM/YY, or DD-MM-YY", s)
}

// daysUntilNextMonday counts days from d to the Monday of the following
// week; from a Monday that is a full seven days.
func daysUntilNextMonday(d time.Time) int {
	// Monday-based weekday index: Monday=0 .. Sunday=6.
	weekday := (int(d.Weekday()) + 6) % 7
	return 7 - weekday
}
