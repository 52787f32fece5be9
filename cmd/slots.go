package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/whenami/whenami/internal/calendar"
	"github.com/whenami/whenami/internal/config"
	"github.com/whenami/whenami/internal/daterange"
	"github.com/whenami/whenami/internal/display"
	"github.com/whenami/whenami/internal/instrumentation"
	"github.com/whenami/whenami/internal/logging"
	"github.com/whenami/whenami/internal/schedule"
)

type slotsOptions struct {
	today        bool
	tomorrow     bool
	nextWeek     bool
	nextTwoWeeks bool
	date         string
	dateRange    string

	workDays      bool
	workHours     bool
	personalHours bool
	allHours      bool

	free       bool
	busy       bool
	split      bool
	eventNames bool

	convertTZ   string
	minDuration string
	account     string

	debug   bool
	metrics bool
}

func newSlotsCmd() *cobra.Command {
	var opts slotsOptions

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Compute free and busy slots for a date range",
		Long: `Query every configured calendar for busy periods, merge them into one
timeline and print the free and busy slots of the chosen date range.

Without a date flag the range is today. Slots are clipped to the personal
hours profile unless another profile is selected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.today, "today", false, "Compute slots for today (default)")
	cmd.Flags().BoolVar(&opts.tomorrow, "tomorrow", false, "Compute slots for tomorrow")
	cmd.Flags().BoolVar(&opts.nextWeek, "next-week", false, "Compute slots for next week (Monday to Sunday)")
	cmd.Flags().BoolVar(&opts.nextTwoWeeks, "next-two-weeks", false, "Compute slots for the coming 14 days")
	cmd.Flags().StringVar(&opts.date, "date", "", "Compute slots for a single day (DD/MM/YYYY)")
	cmd.Flags().StringVar(&opts.dateRange, "date-range", "", "Compute slots for an inclusive day range (DD/MM/YYYY,DD/MM/YYYY)")

	cmd.Flags().BoolVar(&opts.workDays, "work-days", false, "Skip Saturdays and Sundays")
	cmd.Flags().BoolVar(&opts.workHours, "work-hours", false, "Clip slots to the work hours profile")
	cmd.Flags().BoolVar(&opts.personalHours, "personal-hours", false, "Clip slots to the personal hours profile (default)")
	cmd.Flags().BoolVar(&opts.allHours, "all-hours", false, "Do not clip slots to any hours profile")

	cmd.Flags().BoolVar(&opts.free, "free", false, "Show only free slots")
	cmd.Flags().BoolVar(&opts.busy, "busy", false, "Show only busy slots")
	cmd.Flags().BoolVar(&opts.split, "split", false, "Print busy and free slots as separate sections")
	cmd.Flags().BoolVar(&opts.eventNames, "event-names", false, "Show event titles on busy slots")

	cmd.Flags().StringVar(&opts.convertTZ, "convert-tz", "", "Display slots in this IANA timezone")
	cmd.Flags().StringVar(&opts.minDuration, "min-duration", "", "Hide free slots shorter than this (e.g. 45m, 1h30m)")
	cmd.Flags().StringVar(&opts.account, "account", "default", "Google account name to use (default: 'default')")

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print OpenTelemetry metrics on exit")

	cmd.MarkFlagsMutuallyExclusive("today", "tomorrow", "next-week", "next-two-weeks", "date", "date-range")
	cmd.MarkFlagsMutuallyExclusive("work-hours", "personal-hours", "all-hours")
	cmd.MarkFlagsMutuallyExclusive("work-days", "all-hours")
	cmd.MarkFlagsMutuallyExclusive("free", "busy")

	return cmd
}

func runSlots(ctx context.Context, opts slotsOptions) error {
	setupLogging(opts.debug)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc := cfg.Location()
	start, end, err := daterange.Resolve(daterange.Selection{
		Today:        opts.today,
		Tomorrow:     opts.tomorrow,
		NextWeek:     opts.nextWeek,
		NextTwoWeeks: opts.nextTwoWeeks,
		Date:         opts.date,
		Range:        opts.dateRange,
	}, time.Now().In(loc), loc)
	if err != nil {
		return err
	}

	minDuration := cfg.MinimumDuration
	if opts.minDuration != "" {
		minDuration, err = str2duration.ParseDuration(opts.minDuration)
		if err != nil {
			return fmt.Errorf("invalid --min-duration %q: %w", opts.minDuration, err)
		}
	}

	var zone *time.Location
	if opts.convertTZ != "" {
		zone, err = time.LoadLocation(opts.convertTZ)
		if err != nil {
			return fmt.Errorf("unknown timezone %q: %w", opts.convertTZ, err)
		}
	}

	ids := cfg.CalendarIDs()
	if len(ids) == 0 {
		return fmt.Errorf("no calendars configured; add a calendars section to the config file")
	}

	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		ServiceName:    "whenami",
		ServiceVersion: version,
		Enabled:        opts.metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to set up instrumentation: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Warn("failed to flush metrics", logging.KeyError, err.Error())
		}
	}()

	client, err := calendar.NewClientForAccount(ctx, opts.account)
	if err != nil {
		return fmt.Errorf("failed to create Calendar client for account %s: %w", opts.account, err)
	}
	client.SetMetrics(provider.Metrics())

	sources, err := client.FetchBusy(ctx, ids, start, end, opts.eventNames)
	if err != nil {
		return fmt.Errorf("failed to fetch busy periods: %w", err)
	}

	window, filterOpts, brk := profileFor(cfg, opts)

	computeStart := time.Now()
	merged := schedule.Merge(sources)
	slots := schedule.Organize(merged, start, end)
	slots = schedule.FilterHours(slots, window, filterOpts)
	slots = schedule.FilterShort(slots, minDuration, brk)
	provider.Metrics().RecordComputation(ctx, len(slots), time.Since(computeStart).Seconds())

	showFree, showBusy := opts.free, opts.busy
	if !showFree && !showBusy {
		showFree, showBusy = true, true
	}

	display.New(os.Stdout).Render(slots, display.Options{
		Zone:          zone,
		ShowFree:      showFree,
		ShowBusy:      showBusy,
		Split:         opts.split,
		ShowSummaries: opts.eventNames,
		Break:         brk,
	})

	return nil
}

// profileFor selects the hour window slots are clipped to, together with the
// break used for duration accounting. Personal hours is the default profile;
// all-hours uses no window and no break.
func profileFor(cfg *config.Config, opts slotsOptions) (schedule.HourWindow, schedule.FilterOptions, *schedule.BreakWindow) {
	filterOpts := schedule.FilterOptions{
		WeekdaysOnly: opts.workDays,
		AllHours:     opts.allHours,
	}

	switch {
	case opts.allHours:
		return schedule.HourWindow{}, filterOpts, nil
	case opts.workHours:
		return cfg.WorkHours, filterOpts, cfg.WorkHours.Break
	default:
		return cfg.PersonalHours, filterOpts, cfg.PersonalHours.Break
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
