package calendar

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/whenami/whenami/internal/instrumentation"
	"github.com/whenami/whenami/internal/logging"
	"github.com/whenami/whenami/internal/schedule"
)

// FetchBusy collects busy periods for every calendar in calendarIDs over
// [timeMin, timeMax), one concurrent query per calendar. The result keeps
// one (possibly empty) list per calendar, in input order, ready for
// schedule.Merge.
//
// A failed fetch is logged as a warning and contributes an empty list; the
// remaining sources still count. Malformed timestamps and zero-length busy
// periods abort the whole fetch instead, since they would poison the engine.
// Merging must not start until this returns.
func (c *Client) FetchBusy(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time, withSummaries bool) ([][]schedule.BusyPeriod, error) {
	sources := make([][]schedule.BusyPeriod, len(calendarIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range calendarIDs {
		g.Go(func() error {
			started := time.Now()

			var periods []schedule.BusyPeriod
			var err error
			if withSummaries {
				periods, err = c.BusyEvents(ctx, id, timeMin, timeMax)
			} else {
				periods, err = c.FreeBusy(ctx, id, timeMin, timeMax)
			}

			elapsed := time.Since(started).Seconds()
			if err != nil {
				c.metrics.RecordSourceFetch(ctx, instrumentation.ResultError, elapsed)
				if isContractViolation(err) {
					return err
				}
				c.logger.Warn("calendar source fetch failed, contributing no busy periods",
					logging.KeyCalendar, id,
					logging.KeyError, err.Error())
				return nil
			}

			c.metrics.RecordSourceFetch(ctx, instrumentation.ResultSuccess, elapsed)
			c.logger.Debug("fetched busy periods",
				logging.KeyCalendar, id,
				"periods", len(periods))
			sources[i] = periods
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sources, nil
}

// isContractViolation reports whether err indicates data that must not be
// silently treated as an empty source.
func isContractViolation(err error) bool {
	return errors.Is(err, ErrMalformedTime) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, context.Canceled)
}
