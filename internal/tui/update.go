package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// clearStatusMsg is sent when a status message may have expired.
type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		if model, ok := updated.(Model); ok {
			model.ensureCursorVisible()
			return model, cmd
		}
		return updated, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.inputWidth()
		m.ensureCursorVisible()
		return m, nil

	case clearStatusMsg:
		if !m.nowFunc().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ensureCursorVisible scrolls so the selected row stays inside the list area.
func (m *Model) ensureCursorVisible() {
	rows := m.listHeight()
	if rows <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
}
