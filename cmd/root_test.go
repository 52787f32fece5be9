package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whenami/whenami/internal/config"
	"github.com/whenami/whenami/internal/schedule"
)

func TestWithDefaultCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "bare invocation runs slots",
			args: []string{"whenami"},
			want: []string{"whenami", "slots"},
		},
		{
			name: "leading flag runs slots",
			args: []string{"whenami", "--tomorrow", "--free"},
			want: []string{"whenami", "slots", "--tomorrow", "--free"},
		},
		{
			name: "subcommand untouched",
			args: []string{"whenami", "auth"},
			want: []string{"whenami", "auth"},
		},
		{
			name: "help stays on root",
			args: []string{"whenami", "--help"},
			want: []string{"whenami", "--help"},
		},
		{
			name: "version stays on root",
			args: []string{"whenami", "--version"},
			want: []string{"whenami", "--version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withDefaultCommand(tt.args))
		})
	}
}

func TestSlotsCmd_Flags(t *testing.T) {
	cmd := newSlotsCmd()

	for _, name := range []string{
		"today", "tomorrow", "next-week", "next-two-weeks", "date", "date-range",
		"work-days", "work-hours", "personal-hours", "all-hours",
		"free", "busy", "split", "event-names",
		"convert-tz", "min-duration", "account", "debug", "metrics",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestProfileFor(t *testing.T) {
	brk := &schedule.BreakWindow{
		Start: schedule.MustClock("12:00"),
		End:   schedule.MustClock("13:00"),
	}
	cfg := &config.Config{
		WorkHours: schedule.HourWindow{
			DayStart: schedule.MustClock("09:00"),
			DayEnd:   schedule.MustClock("17:00"),
			Break:    brk,
		},
		PersonalHours: schedule.HourWindow{
			DayStart: schedule.MustClock("08:00"),
			DayEnd:   schedule.MustClock("22:00"),
		},
	}

	t.Run("default is personal hours", func(t *testing.T) {
		window, opts, gotBreak := profileFor(cfg, slotsOptions{})
		assert.Equal(t, cfg.PersonalHours, window)
		assert.False(t, opts.AllHours)
		assert.Nil(t, gotBreak)
	})

	t.Run("work hours on request", func(t *testing.T) {
		window, _, gotBreak := profileFor(cfg, slotsOptions{workHours: true})
		assert.Equal(t, cfg.WorkHours, window)
		assert.Equal(t, brk, gotBreak)
	})

	t.Run("all hours drops window and break", func(t *testing.T) {
		_, opts, gotBreak := profileFor(cfg, slotsOptions{allHours: true})
		assert.True(t, opts.AllHours)
		assert.Nil(t, gotBreak)
	})

	t.Run("work days filters weekends", func(t *testing.T) {
		_, opts, _ := profileFor(cfg, slotsOptions{workDays: true})
		assert.True(t, opts.WeekdaysOnly)
	})
}

func TestZonesIn(t *testing.T) {
	dir := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("TZif"), 0644))
	}
	write("Europe/Berlin")
	write("America/New_York")
	write("UTC")
	write("zone.tab")
	write("posixrules")
	write("posix/Europe/Berlin")
	write("right/UTC")

	names, err := zonesIn(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"America/New_York", "Europe/Berlin", "UTC"}, names)
}

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "whenami version 1.2.3\n", buf.String())
}

func TestAuthCmd_NoCodeEntered(t *testing.T) {
	var buf bytes.Buffer
	cmd := newAuthCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(bytes.NewBufferString("\n"))

	err := cmd.Execute()
	assert.ErrorContains(t, err, "no authorization code")
	assert.Contains(t, buf.String(), "authorization code")
}
