package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/event"
)

func testEvents() []event.Event {
	return []event.Event{
		{ID: "standup", Title: "Team sync", Date: "2024-10-31", StartTime: "10:00", EndTime: "11:00", Location: "Room A"},
		{ID: "lunch", Title: "Lunch", Date: "2024-11-01", StartTime: "12:30", EndTime: "13:30", Location: "Cafe"},
		{ID: "review", Title: "Design review", Date: "2024-11-01", StartTime: "13:00", EndTime: "14:00", Location: "Room B"},
		{ID: "party", Title: "Birthday party", Date: "2024-11-08", StartTime: "19:00", EndTime: "22:00"},
		{ID: "gym", Title: "Gym", Date: "2024-11-29", StartTime: "18:00", EndTime: "19:00"},
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 11, 1, 12, 0, 0, 0, time.Local)
}

func newTestModel(t *testing.T, view string, opts ...ModelOption) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Calendar.View = view
	opts = append([]ModelOption{WithNow(fixedNow)}, opts...)
	return *New(testEvents(), cfg, opts...)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		model, ok := updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
		m = model
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func filteredIDs(m Model) []string {
	filtered := m.search.Filtered()
	out := make([]string, len(filtered))
	for i, e := range filtered {
		out[i] = e.ID
	}
	return out
}

func assertIDs(t *testing.T, m Model, want ...string) {
	t.Helper()
	got := filteredIDs(m)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
}
