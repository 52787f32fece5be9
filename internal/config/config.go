// Package config loads the whenami configuration: calendar list, hour
// profiles with optional mid-day breaks, default timezone and LLM settings.
//
// Configuration lives in ~/.config/whenami/config.{json,yaml} with the
// current directory as fallback; WHENAMI_* environment variables override
// file values. Hour windows are validated here once, so the engine is never
// handed an invalid window.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/whenami/whenami/internal/schedule"
)

// Defaults applied when the config file omits a value.
const (
	DefaultWorkStart       = "09:00"
	DefaultWorkEnd         = "17:00"
	DefaultPersonalStart   = "08:00"
	DefaultPersonalEnd     = "22:00"
	DefaultMinimumDuration = 30 * time.Minute
)

// CalendarRef identifies one calendar source.
type CalendarRef struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// LLM configures the natural-language query front-end.
type LLM struct {
	Enabled bool   `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
}

// Config is the loaded, validated configuration value. It is threaded
// explicitly into the components that need it; there is no package-level
// singleton.
type Config struct {
	Calendars       []CalendarRef
	DefaultTimezone string
	MinimumDuration time.Duration
	WorkHours       schedule.HourWindow
	PersonalHours   schedule.HourWindow
	LLM             LLM
}

type rawBreak struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type rawHours struct {
	Start       string   `mapstructure:"start"`
	End         string   `mapstructure:"end"`
	MidDayBreak rawBreak `mapstructure:"mid_day_break"`
}

type rawConfig struct {
	Calendars           []CalendarRef `mapstructure:"calendars"`
	DefaultTimezone     string        `mapstructure:"default_timezone"`
	MinimumSlotDuration int           `mapstructure:"minimum_slot_duration"`
	WorkHours           rawHours      `mapstructure:"work_hours"`
	PersonalHours       rawHours      `mapstructure:"personal_hours"`
	LLM                 LLM           `mapstructure:"llm"`
}

// Load reads the configuration from the default search paths. A missing
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(defaultConfigDir())
}

// LoadFrom reads the configuration searching dir first, then the current
// directory.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("WHENAMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("minimum_slot_duration", int(DefaultMinimumDuration.Minutes()))
	v.SetDefault("work_hours.start", DefaultWorkStart)
	v.SetDefault("work_hours.end", DefaultWorkEnd)
	v.SetDefault("personal_hours.start", DefaultPersonalStart)
	v.SetDefault("personal_hours.end", DefaultPersonalEnd)
	v.SetDefault("llm.model", "gemini-2.0-flash")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return buildConfig(raw)
}

func buildConfig(raw rawConfig) (*Config, error) {
	work, err := parseHours(raw.WorkHours)
	if err != nil {
		return nil, fmt.Errorf("work_hours: %w", err)
	}
	personal, err := parseHours(raw.PersonalHours)
	if err != nil {
		return nil, fmt.Errorf("personal_hours: %w", err)
	}
	if raw.MinimumSlotDuration < 0 {
		return nil, fmt.Errorf("minimum_slot_duration must not be negative, got %d", raw.MinimumSlotDuration)
	}

	return &Config{
		Calendars:       raw.Calendars,
		DefaultTimezone: raw.DefaultTimezone,
		MinimumDuration: time.Duration(raw.MinimumSlotDuration) * time.Minute,
		WorkHours:       work,
		PersonalHours:   personal,
		LLM:             raw.LLM,
	}, nil
}

func parseHours(raw rawHours) (schedule.HourWindow, error) {
	var w schedule.HourWindow
	var err error

	if w.DayStart, err = schedule.ParseClock(raw.Start); err != nil {
		return w, err
	}
	if w.DayEnd, err = schedule.ParseClock(raw.End); err != nil {
		return w, err
	}

	// A break needs both bounds; a fully absent pair disables splitting.
	switch {
	case raw.MidDayBreak.Start == "" && raw.MidDayBreak.End == "":
	case raw.MidDayBreak.Start == "" || raw.MidDayBreak.End == "":
		return w, fmt.Errorf("mid_day_break needs both start and end")
	default:
		brk := &schedule.BreakWindow{}
		if brk.Start, err = schedule.ParseClock(raw.MidDayBreak.Start); err != nil {
			return w, err
		}
		if brk.End, err = schedule.ParseClock(raw.MidDayBreak.End); err != nil {
			return w, err
		}
		w.Break = brk
	}

	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}

// Location resolves the timezone used to anchor date ranges: configured
// default, then $TZ, then the system zone files, then UTC.
func (c *Config) Location() *time.Location {
	if c.DefaultTimezone != "" {
		if loc, err := time.LoadLocation(c.DefaultTimezone); err == nil {
			return loc
		}
	}

	if tz := os.Getenv("TZ"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if data, err := os.ReadFile("/etc/timezone"); err == nil {
		if loc, err := time.LoadLocation(strings.TrimSpace(string(data))); err == nil {
			return loc
		}
	}

	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if _, name, ok := strings.Cut(link, "/zoneinfo/"); ok {
			if loc, err := time.LoadLocation(name); err == nil {
				return loc
			}
		}
	}

	return time.UTC
}

// CalendarIDs returns the identifiers of all configured calendars.
func (c *Config) CalendarIDs() []string {
	ids := make([]string, 0, len(c.Calendars))
	for _, cal := range c.Calendars {
		ids = append(ids, cal.ID)
	}
	return ids
}

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "whenami")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "whenami")
}
