package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorMatch       lipgloss.Color
	colorOverlap     lipgloss.Color
	colorToday       lipgloss.Color

	// Title and header
	TitleStyle  lipgloss.Style
	WindowStyle lipgloss.Style

	// Date column
	DateStyle      lipgloss.Style
	DateTodayStyle lipgloss.Style

	// Event rows
	TimeStyle        lipgloss.Style
	EventStyle       lipgloss.Style
	MetaStyle        lipgloss.Style
	SelectedStyle    lipgloss.Style
	OverlapStyle     lipgloss.Style
	OverlapMarkStyle lipgloss.Style
	MatchStyle       lipgloss.Style

	// Empty list
	EmptyStyle lipgloss.Style

	// Search box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	InputTextStyle     lipgloss.Style
	InputCursorStyle   lipgloss.Style
	PlaceholderStyle   lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorMatch = palette.Match
	s.colorOverlap = palette.Overlap
	s.colorToday = palette.Today

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)

	s.WindowStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 1)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.DateTodayStyle = s.DateStyle.
		Bold(true).
		Foreground(s.colorToday)

	s.TimeStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.EventStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.MetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnSelection).
		Background(s.colorBgSelection)

	s.OverlapStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnOverlap).
		Background(palette.OverlapBg)

	s.OverlapMarkStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorOverlap)

	s.MatchStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(s.colorMatch)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = s.PromptStyle.
		BorderForeground(s.colorAccent)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.InputCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorMatch).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.AppStyle = lipgloss.NewStyle().
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	return s
}
