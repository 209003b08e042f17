// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/logging"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Notify   NotifyConfig   `toml:"notify"`
	Log      LogConfig      `toml:"log"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds where events come from and how they are shown.
type CalendarConfig struct {
	EventsFile string `toml:"events_file"` // .toml or .ics, read-only
	View       string `toml:"view"`        // "week" or "month"
}

// NotifyConfig holds reminder scheduling settings.
type NotifyConfig struct {
	Schedule string `toml:"schedule"` // cron spec, e.g. "@every 30s"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			EventsFile: defaultEventsPath(),
			View:       string(event.ViewWeek),
		},
		Notify: NotifyConfig{
			Schedule: "@every 30s",
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultEventsPath returns the default event file path.
func defaultEventsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "events.toml"
	}
	return filepath.Join(home, ".config", "agenda", "events.toml")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "agenda", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Calendar.EventsFile = expandPath(cfg.Calendar.EventsFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AGENDA_EVENTS_FILE"); v != "" {
		cfg.Calendar.EventsFile = v
	}
	if v := os.Getenv("AGENDA_VIEW"); v != "" {
		cfg.Calendar.View = v
	}
	if v := os.Getenv("AGENDA_NOTIFY_SCHEDULE"); v != "" {
		cfg.Notify.Schedule = v
	}
	if v := os.Getenv("AGENDA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AGENDA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Calendar.EventsFile == "" {
		return errors.New("events_file must be set")
	}
	if _, err := event.ParseViewMode(c.Calendar.View); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	if _, err := cron.ParseStandard(c.Notify.Schedule); err != nil {
		return fmt.Errorf("notify schedule %q: %w", c.Notify.Schedule, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q, available: %s", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// ViewMode returns the configured default view.
// Validate guarantees it parses; week is the fallback otherwise.
func (c *Config) ViewMode() event.ViewMode {
	v, err := event.ParseViewMode(c.Calendar.View)
	if err != nil {
		return event.ViewWeek
	}
	return v
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
