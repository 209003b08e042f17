// Package tui provides the terminal user interface for agenda.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/logging"
	"github.com/javiermolinar/agenda/internal/search"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	search *search.Search
	logger *logging.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Ids of loaded events that collide with at least one other loaded event
	overlapping map[string]bool

	// State
	cursor       int // Index into search.Filtered()
	scrollOffset int // First visible row

	// Components
	input textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	nowFunc func() time.Time
	copyFn  func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger used for key and filter tracing.
func WithLogger(l *logging.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithNow overrides the clock used to pick the initial window and mark today.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.nowFunc = now
		}
	}
}

// WithClipboard overrides how ctrl+y copies the visible agenda.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) {
		if fn != nil {
			m.copyFn = fn
		}
	}
}

// New creates a new TUI model over the given events.
func New(events []event.Event, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Search title, description or location"
	ti.Prompt = "/ "
	ti.CharLimit = 128
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PromptStyle = styles.InputCursorStyle
	ti.Cursor.Style = styles.InputCursorStyle
	ti.Cursor.TextStyle = styles.InputTextStyle
	ti.Focus()

	m := &Model{
		logger:  logging.Discard(),
		theme:   t,
		styles:  styles,
		input:   ti,
		nowFunc: time.Now,
		copyFn:  writeClipboard,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.search = search.New(events, m.nowFunc(), cfg.ViewMode())
	m.overlapping = overlappingIDs(events)
	logger := m.logger
	m.search.Subscribe(func(filtered []event.Event) {
		logger.Debug("agenda filtered", "count", len(filtered))
	})

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI.
func Run(events []event.Event, cfg *config.Config, logger *logging.Logger) error {
	model := New(events, cfg, WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// overlappingIDs returns the ids of events that overlap any other event.
func overlappingIDs(events []event.Event) map[string]bool {
	ids := make(map[string]bool)
	for _, e := range events {
		if len(event.FindOverlapping(e, events)) > 0 {
			ids[e.ID] = true
		}
	}
	return ids
}
