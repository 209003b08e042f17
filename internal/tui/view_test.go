package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/event"
)

func TestView_RendersWindowAndRows(t *testing.T) {
	m := newTestModel(t, "week")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	out := m.View()
	for _, want := range []string{
		"agenda",
		"Week 2024-10-27 to 2024-11-02",
		"Team sync",
		"Design review",
		"Fri 11/01",
		"3 of 5 events",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(out, "Birthday party") {
		t.Error("View() should not render events outside the window")
	}
}

func TestView_MarksOverlapsAndSelection(t *testing.T) {
	m := newTestModel(t, "week")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	rows := strings.Split(m.renderList(), "\n")
	if !strings.Contains(rows[0], "› ") {
		t.Errorf("first row should carry the cursor: %q", rows[0])
	}
	if strings.Contains(rows[0], "!") {
		t.Errorf("standup does not overlap: %q", rows[0])
	}
	if !strings.Contains(rows[1], "! ") || !strings.Contains(rows[2], "! ") {
		t.Errorf("lunch and review overlap: %q / %q", rows[1], rows[2])
	}
}

func TestView_EmptyStates(t *testing.T) {
	m := newTestModel(t, "week")
	m = press(t, m, typed("zzz"))
	if out := m.View(); !strings.Contains(out, `No events match "zzz"`) {
		t.Errorf("View() missing no-match message")
	}

	m = newTestModel(t, "week")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if out := m.View(); !strings.Contains(out, "No events in this window") {
		t.Errorf("View() missing empty window message")
	}
}

func TestView_TruncatesToWidth(t *testing.T) {
	m := newTestModel(t, "week")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	m = updated.(Model)

	for _, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line width %d exceeds terminal: %q", w, line)
		}
	}
}

func TestHighlight(t *testing.T) {
	base := lipgloss.NewStyle()
	upper := lipgloss.NewStyle().Transform(strings.ToUpper)

	tests := []struct {
		name string
		s    string
		term string
		want string
	}{
		{name: "no term", s: "Team sync", term: "", want: "Team sync"},
		{name: "single match", s: "Team sync", term: "SYNC", want: "Team SYNC"},
		{name: "repeated match", s: "abcabc", term: "b", want: "aBcaBc"},
		{name: "no match", s: "Lunch", term: "gym", want: "Lunch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := highlight(tt.s, tt.term, base, upper); got != tt.want {
				t.Errorf("highlight(%q, %q) = %q, want %q", tt.s, tt.term, got, tt.want)
			}
		})
	}
}

func TestWindowLabel(t *testing.T) {
	ref := time.Date(2024, 11, 1, 0, 0, 0, 0, time.Local)

	if got := windowLabel(ref, event.ViewWeek); got != "Week 2024-10-27 to 2024-11-02" {
		t.Errorf("week label = %q", got)
	}
	if got := windowLabel(ref, event.ViewMonth); got != "November 2024" {
		t.Errorf("month label = %q", got)
	}
}

func TestEventMeta(t *testing.T) {
	e := event.Event{
		Location: "Room A",
		Category: "work",
		Repeat:   event.Repeat{Type: event.RepeatWeekly, Interval: 1},
	}
	if got := eventMeta(e); got != "@ Room A #work ↻ weekly" {
		t.Errorf("eventMeta = %q", got)
	}
	if got := eventMeta(event.Event{}); got != "" {
		t.Errorf("eventMeta(empty) = %q, want empty", got)
	}
}

func TestDayLabel(t *testing.T) {
	if got := dayLabel("2024-11-01"); got != "Fri 11/01" {
		t.Errorf("dayLabel = %q", got)
	}
	if got := dayLabel("bad"); got != "bad      " {
		t.Errorf("dayLabel(bad) = %q", got)
	}
}
