package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/event"
)

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// handleKeyMsg handles keyboard input. Navigation keys are consumed here;
// everything else goes to the search input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key press", "key", msg.String())

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.search.SetView(m.search.View().Toggle())
		m.resetCursor()
		return m, nil
	case "left":
		m.shiftWindow(-1)
		return m, nil
	case "right":
		m.shiftWindow(1)
		return m, nil
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	case "ctrl+y":
		return m.copyVisible()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if term := m.input.Value(); term != m.search.Term() {
		m.search.SetTerm(term)
		m.resetCursor()
	}
	return m, cmd
}

// shiftWindow moves the reference date by one window in the given direction.
func (m *Model) shiftWindow(dir int) {
	ref := m.search.Reference()
	if m.search.View() == event.ViewMonth {
		// Pin to the first so Jan 31 + 1 month does not skip February.
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		ref = first.AddDate(0, dir, 0)
	} else {
		ref = ref.AddDate(0, 0, 7*dir)
	}
	m.search.SetReference(ref)
	m.resetCursor()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.search.Filtered())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.scrollOffset = 0
}

func (m Model) copyVisible() (tea.Model, tea.Cmd) {
	filtered := m.search.Filtered()
	if len(filtered) == 0 {
		m.setStatus("No events to copy")
		return m, nil
	}
	if err := m.copyFn(buildCopyText(filtered)); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err))
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Copied %d events", len(filtered)))
	return m, clearStatusAfter(statusTTL)
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = m.nowFunc().Add(statusTTL)
}
