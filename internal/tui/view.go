package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

// Lines used by everything except the event list: top padding, title,
// two spacers, the bordered search box and the footer.
const chromeHeight = 8

const helpText = "tab week/month · ←/→ prev/next · ↑/↓ select · ctrl+y copy · esc quit"

// View renders the TUI.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderPrompt(),
		"",
		m.renderList(),
		m.renderFooter(),
	}
	return m.styles.AppStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - m.styles.AppStyle.GetHorizontalPadding()
	if w < 1 {
		return 1
	}
	return w
}

func (m Model) inputWidth() int {
	w := m.innerWidth() - m.styles.PromptStyle.GetHorizontalFrameSize() - lipgloss.Width(m.input.Prompt) - 1
	if w < 10 {
		return 10
	}
	return w
}

// listHeight returns the number of event rows that fit, or 0 when the
// terminal size is unknown.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - chromeHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("agenda")
	window := m.styles.WindowStyle.Render(windowLabel(m.search.Reference(), m.search.View()))
	return m.truncate(lipgloss.JoinHorizontal(lipgloss.Top, title, " ", window))
}

func (m Model) renderPrompt() string {
	style := m.styles.PromptFocusedStyle
	if !m.input.Focused() {
		style = m.styles.PromptStyle
	}
	if w := m.innerWidth(); w > 0 {
		style = style.Width(w - style.GetHorizontalBorderSize())
	}
	return style.Render(m.input.View())
}

func (m Model) renderList() string {
	filtered := m.search.Filtered()
	rows := m.listHeight()
	if len(filtered) == 0 {
		lines := []string{m.styles.EmptyStyle.Render(emptyMessage(m.search.Term()))}
		return strings.Join(padLines(lines, rows), "\n")
	}

	start, end := 0, len(filtered)
	if rows > 0 {
		start = m.scrollOffset
		if start > len(filtered) {
			start = len(filtered)
		}
		if start+rows < end {
			end = start + rows
		}
	}

	today := dateutil.TruncateToDay(m.nowFunc()).Format(dateutil.DateLayout)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(filtered[i], i == m.cursor, filtered[i].Date == today))
	}
	return strings.Join(padLines(lines, rows), "\n")
}

func (m Model) renderRow(e event.Event, selected, today bool) string {
	overlap := m.overlapping[e.ID]

	if selected {
		return m.styles.SelectedStyle.Render(m.truncate(plainRow(e, overlap)))
	}

	mark := "  "
	if overlap {
		mark = m.styles.OverlapMarkStyle.Render("! ")
	}
	dateStyle := m.styles.DateStyle
	if today {
		dateStyle = m.styles.DateTodayStyle
	}
	titleStyle := m.styles.EventStyle
	if overlap {
		titleStyle = m.styles.OverlapStyle
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(mark)
	b.WriteString(dateStyle.Render(dayLabel(e.Date)))
	b.WriteString("  ")
	b.WriteString(m.styles.TimeStyle.Render(timeSpan(e)))
	b.WriteString("  ")
	b.WriteString(highlight(e.Title, m.search.Term(), titleStyle, m.styles.MatchStyle))
	if meta := eventMeta(e); meta != "" {
		b.WriteString(m.styles.MetaStyle.Render("  " + meta))
	}
	return m.truncate(b.String())
}

func (m Model) renderFooter() string {
	filtered := m.search.Filtered()
	counts := fmt.Sprintf("%d of %d events", len(filtered), len(m.search.Events()))
	left := m.styles.HelpStyle.Render(counts + " · " + helpText)
	if m.statusMsg != "" {
		left = m.styles.StatusStyle.Render(m.statusMsg) + m.styles.HelpStyle.Render(" · "+counts)
	}
	return m.truncate(left)
}

// truncate cuts a styled line to the inner width without breaking escapes.
func (m Model) truncate(s string) string {
	w := m.innerWidth()
	if w <= 0 {
		return s
	}
	return ansi.Truncate(s, w, "…")
}

// plainRow renders the selected row without inner styling.
func plainRow(e event.Event, overlap bool) string {
	mark := "  "
	if overlap {
		mark = "! "
	}
	row := "› " + mark + dayLabel(e.Date) + "  " + timeSpan(e) + "  " + e.Title
	if meta := eventMeta(e); meta != "" {
		row += "  " + meta
	}
	return row
}

// highlight styles every case-insensitive occurrence of term in s.
func highlight(s, term string, base, match lipgloss.Style) string {
	if term == "" {
		return base.Render(s)
	}
	lower := strings.ToLower(s)
	needle := strings.ToLower(term)
	// Byte offsets only line up when lowering keeps the length.
	if len(lower) != len(s) {
		return base.Render(s)
	}

	var b strings.Builder
	rest := 0
	for {
		idx := strings.Index(lower[rest:], needle)
		if idx < 0 {
			break
		}
		from := rest + idx
		to := from + len(needle)
		if from > rest {
			b.WriteString(base.Render(s[rest:from]))
		}
		b.WriteString(match.Render(s[from:to]))
		rest = to
	}
	if rest < len(s) {
		b.WriteString(base.Render(s[rest:]))
	}
	return b.String()
}

func dayLabel(date string) string {
	d, err := dateutil.ParseDateIn(date, time.Local)
	if err != nil {
		return fmt.Sprintf("%-9s", date)
	}
	return d.Format("Mon 01/02")
}

func timeSpan(e event.Event) string {
	return e.StartTime + "-" + e.EndTime
}

func eventMeta(e event.Event) string {
	var parts []string
	if e.Location != "" {
		parts = append(parts, "@ "+e.Location)
	}
	if e.Category != "" {
		parts = append(parts, "#"+e.Category)
	}
	if e.IsRecurring() {
		parts = append(parts, "↻ "+string(e.Repeat.Type))
	}
	return strings.Join(parts, " ")
}

func windowLabel(ref time.Time, view event.ViewMode) string {
	first, last := event.Window(ref, view)
	if view == event.ViewMonth {
		return first.Format("January 2006")
	}
	return fmt.Sprintf("Week %s to %s", first.Format(dateutil.DateLayout), last.Format(dateutil.DateLayout))
}

func emptyMessage(term string) string {
	if term == "" {
		return "No events in this window"
	}
	return fmt.Sprintf("No events match %q", term)
}

func padLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// buildCopyText renders events as plain lines for the clipboard.
func buildCopyText(events []event.Event) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		line := e.Date + " " + timeSpan(e) + " " + e.Title
		if e.Location != "" {
			line += " @ " + e.Location
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
