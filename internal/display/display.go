// Package display renders computed slot sequences for the terminal.
//
// Free slots print green, busy slots red, either interleaved
// chronologically or split into two sections. Totals are break-aware.
// Filtering (hour windows, minimum duration) happens upstream in the
// schedule package; the presenter only renders what it is handed.
package display

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/whenami/whenami/internal/schedule"
)

// Options selects what Render shows and how.
type Options struct {
	// Zone converts every slot for display when non-nil. Engine output
	// instants are unchanged.
	Zone *time.Location

	ShowFree      bool
	ShowBusy      bool
	Split         bool
	ShowSummaries bool

	// Break is used for break-aware duration accounting. It is the break
	// of the profile the slots were filtered with.
	Break *schedule.BreakWindow
}

// Presenter writes slot listings to a terminal or buffer.
type Presenter struct {
	out io.Writer

	free  *color.Color
	busy  *color.Color
	total *color.Color
}

// New creates a Presenter writing to out.
func New(out io.Writer) *Presenter {
	return &Presenter{
		out:   out,
		free:  color.New(color.FgGreen),
		busy:  color.New(color.FgRed),
		total: color.New(color.Bold),
	}
}

// Render prints the slot sequence according to opts.
func (p *Presenter) Render(slots []schedule.Slot, opts Options) {
	if len(slots) == 0 {
		fmt.Fprintln(p.out, "No slots to display")
		return
	}

	if opts.Zone != nil {
		converted := make([]schedule.Slot, len(slots))
		for i, s := range slots {
			converted[i] = s.In(opts.Zone)
		}
		slots = converted
	}

	var freeSlots, busySlots []schedule.Slot
	var totalFree, totalBusy time.Duration

	for _, s := range slots {
		d := schedule.ActiveDuration(s, opts.Break)
		if s.Busy {
			totalBusy += d
			if opts.ShowBusy {
				busySlots = append(busySlots, s)
			}
			continue
		}
		totalFree += d
		if opts.ShowFree {
			freeSlots = append(freeSlots, s)
		}
	}

	fmt.Fprintf(p.out, "\nWHENAMI %s/%s?\n", p.free.Sprint("free"), p.busy.Sprint("busy"))

	if opts.Split {
		p.renderSplit(freeSlots, busySlots, totalFree, totalBusy, opts)
		return
	}
	p.renderInterleaved(freeSlots, busySlots, totalFree, totalBusy, opts)
}

func (p *Presenter) renderSplit(freeSlots, busySlots []schedule.Slot, totalFree, totalBusy time.Duration, opts Options) {
	if opts.ShowBusy && len(busySlots) > 0 {
		fmt.Fprintf(p.out, "\n%s slots\n", p.busy.Sprint("Busy"))
		p.renderSection(busySlots, opts)
		fmt.Fprintf(p.out, "Total %s time: %s\n", p.busy.Sprint("busy"), p.total.Sprint(FormatDuration(totalBusy)))
	}

	if opts.ShowFree && len(freeSlots) > 0 {
		fmt.Fprintf(p.out, "\n%s slots\n", p.free.Sprint("Free"))
		p.renderSection(freeSlots, opts)
		fmt.Fprintf(p.out, "Total %s time: %s\n", p.free.Sprint("free"), p.total.Sprint(FormatDuration(totalFree)))
	}
}

func (p *Presenter) renderInterleaved(freeSlots, busySlots []schedule.Slot, totalFree, totalBusy time.Duration, opts Options) {
	all := append(append([]schedule.Slot{}, busySlots...), freeSlots...)
	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })

	p.renderSection(all, opts)

	if opts.ShowFree {
		fmt.Fprintf(p.out, "Total %s time: %s\n", p.free.Sprint("free"), p.total.Sprint(FormatDuration(totalFree)))
	}
	if opts.ShowBusy {
		fmt.Fprintf(p.out, "Total %s time: %s\n", p.busy.Sprint("busy"), p.total.Sprint(FormatDuration(totalBusy)))
	}
}

// renderSection prints bullets between separators sized to the widest line.
func (p *Presenter) renderSection(slots []schedule.Slot, opts Options) {
	lines := make([]string, len(slots))
	width := 0
	for i, s := range slots {
		lines[i] = bulletLine(s, opts.ShowSummaries)
		if n := utf8.RuneCountInString(lines[i]); n > width {
			width = n
		}
	}

	separator := strings.Repeat("─", width)
	fmt.Fprintln(p.out, separator)
	for i, s := range slots {
		c := p.free
		if s.Busy {
			c = p.busy
		}
		fmt.Fprintln(p.out, c.Sprint(lines[i]))
	}
	fmt.Fprintln(p.out, separator)
}

func bulletLine(s schedule.Slot, showSummaries bool) string {
	line := fmt.Sprintf("• %s to %s", formatInstant(s.Start), formatInstant(s.End))
	if showSummaries && s.Busy && s.Summary != "" {
		line += " - " + s.Summary
	}
	return line
}

func formatInstant(t time.Time) string {
	return t.Format("2006-01-02 15:04 MST")
}

// FormatDuration renders a duration in words: "45 minutes",
// "2 hours", "1 hour 30 minutes".
func FormatDuration(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	plural := ""
	if hours != 1 {
		plural = "s"
	}

	switch {
	case hours == 0:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes == 0:
		return fmt.Sprintf("%d hour%s", hours, plural)
	default:
		return fmt.Sprintf("%d hour%s %d minutes", hours, plural, minutes)
	}
}
