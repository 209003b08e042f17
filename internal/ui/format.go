package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Overlapping  map[string]bool // Event ids to flag as conflicting
	Verbose      bool            // Show descriptions
	MaxRowWidth  int             // Maximum row width (0 = terminal width)
	ShowCategory bool            // Show the category column
}

// rowWidth returns the width rows are truncated to.
func (o PrintOpts) rowWidth() int {
	if o.MaxRowWidth > 0 {
		return o.MaxRowWidth
	}
	return termWidth()
}

// WindowTitle describes the view window containing ref.
func WindowTitle(ref time.Time, view event.ViewMode) string {
	first, last := event.Window(ref, view)
	if view == event.ViewMonth {
		return first.Format("January 2006")
	}
	return fmt.Sprintf("Week of %s to %s", first.Format(dateutil.DateLayout), last.Format(dateutil.DateLayout))
}

// RangeTitle describes an explicit date range.
func RangeTitle(dr *dateutil.DateRange) string {
	if dr.Start.Equal(dr.End) {
		return dr.Start.Format("Monday, January 2 2006")
	}
	return fmt.Sprintf("%s to %s", dr.Start.Format(dateutil.DateLayout), dr.End.Format(dateutil.DateLayout))
}

// PrintEvents prints events grouped by date, keeping their order.
func PrintEvents(w io.Writer, events []event.Event, opts PrintOpts) {
	var currentDate string
	for _, e := range events {
		if e.Date != currentDate {
			if currentDate != "" {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, formatHeader(dayHeading(e.Date)))
			currentDate = e.Date
		}
		PrintEventRow(w, e, opts)
	}
}

// PrintEventRow prints a single event row with consistent formatting.
func PrintEventRow(w io.Writer, e event.Event, opts PrintOpts) {
	marker := "  "
	if opts.Overlapping[e.ID] {
		marker = formatConflict("! ")
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(marker)
	b.WriteString(formatTime(e.StartTime + "-" + e.EndTime))
	b.WriteString("  ")
	b.WriteString(e.Title)
	if e.Location != "" {
		b.WriteString(formatMuted("  @ " + e.Location))
	}
	if opts.ShowCategory && e.Category != "" {
		b.WriteString(formatMuted("  #" + e.Category))
	}
	if e.IsRecurring() {
		b.WriteString(formatMuted("  ↻ " + repeatLabel(e.Repeat)))
	}
	if d := e.Duration(); d > 0 {
		b.WriteString(formatMuted("  " + FormatDuration(d)))
	}

	_, _ = fmt.Fprintln(w, ansi.Truncate(b.String(), opts.rowWidth(), "…"))
	if opts.Verbose && e.Description != "" {
		_, _ = fmt.Fprintln(w, ansi.Truncate(formatMuted("        "+e.Description), opts.rowWidth(), "…"))
	}
}

func dayHeading(date string) string {
	d, err := dateutil.ParseDateIn(date, time.Local)
	if err != nil {
		return fmt.Sprintf("=== %s ===", date)
	}
	return fmt.Sprintf("=== %s (%s) ===", date, d.Format("Mon"))
}

func repeatLabel(r event.Repeat) string {
	if r.Interval > 1 {
		return fmt.Sprintf("%s/%d", r.Type, r.Interval)
	}
	return string(r.Type)
}

// overlappingIDs returns the ids of events that overlap another event.
func overlappingIDs(events []event.Event) map[string]bool {
	ids := make(map[string]bool)
	for _, e := range events {
		if len(event.FindOverlapping(e, events)) > 0 {
			ids[e.ID] = true
		}
	}
	return ids
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// TotalMinutes sums the durations of events with valid times.
func TotalMinutes(events []event.Event) int {
	total := 0
	for _, e := range events {
		total += e.Duration()
	}
	return total
}

// parseNow parses a --now value: RFC3339 or "YYYY-MM-DD HH:MM" local time.
// Empty means the current time.
func parseNow(s string, now func() time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	date, clock, ok := strings.Cut(s, " ")
	if !ok {
		date, clock, ok = strings.Cut(s, "T")
	}
	if ok {
		if t, valid := event.ParseDateTime(date, strings.TrimSpace(clock)).Time(); valid {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (want RFC3339 or YYYY-MM-DD HH:MM)", ErrInvalidNow, s)
}
