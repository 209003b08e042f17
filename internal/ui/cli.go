// Package ui implements the agenda command line.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/logging"
	"github.com/javiermolinar/agenda/internal/source"
	"github.com/javiermolinar/agenda/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Command errors.
var (
	ErrInvalidNow     = errors.New("invalid --now value")
	ErrIncompleteSlot = errors.New("--date, --start and one of --end or --duration are required")
	ErrInvalidEvents  = errors.New("event file contains invalid events")
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	logger *logging.Logger

	debug      bool   // Enable debug logging
	noColor    bool   // Disable colored output
	eventsFile string // Overrides calendar.events_file

	now func() time.Time
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg, logger: logging.Discard(), now: time.Now}

	a.root = &cobra.Command{
		Use:   "agenda",
		Short: "A read-only calendar agenda for the terminal",
		Long: `Agenda reads events from a TOML or iCalendar file and lets you
browse them by week or month, search them, spot overlapping events
and get reminded before they start.

Run without a subcommand to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBrowse(cmd.Context())
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to stderr")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentFlags().StringVar(&a.eventsFile, "events", "", "Event file to read (.toml or .ics), overrides config")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.overlapsCmd())
	a.root.AddCommand(a.upcomingCmd())
	a.root.AddCommand(a.watchCmd())
	a.root.AddCommand(a.validateCmd())
	a.root.AddCommand(a.browseCmd())

	return a
}

func (a *App) setup(stderr io.Writer) error {
	level := a.config.Log.Level
	if a.debug {
		level = "debug"
	}
	a.logger = logging.New(level, stderr)
	if a.noColor {
		DisableColor()
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "agenda %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and search events interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBrowse(cmd.Context())
		},
	}
}

func (a *App) runBrowse(ctx context.Context) error {
	events, err := a.loadEvents(ctx)
	if err != nil {
		return err
	}
	return tui.Run(events, a.config, a.logger)
}

// eventsPath returns the event file to read.
func (a *App) eventsPath() string {
	if a.eventsFile != "" {
		return a.eventsFile
	}
	return a.config.Calendar.EventsFile
}

func (a *App) openSource() (event.Source, error) {
	path := a.eventsPath()
	src, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening events: %w", err)
	}
	return src, nil
}

// loadEvents reads the event file. Records that fail validation are kept
// and logged.
func (a *App) loadEvents(ctx context.Context) ([]event.Event, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src, err := a.openSource()
	if err != nil {
		return nil, err
	}
	events, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			a.logger.Warn("invalid event", "id", e.ID, "title", e.Title, "err", err)
		}
	}
	a.logger.Debug("events loaded", "path", a.eventsPath(), "count", len(events))
	return events, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}
