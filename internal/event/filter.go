package event

import (
	"strings"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// Filter returns the events matching term that fall inside the view window
// containing ref. Order is preserved and the input is never modified.
func Filter(events []Event, term string, ref time.Time, view ViewMode) []Event {
	needle := strings.ToLower(term)
	start, end := Window(ref, view)

	result := make([]Event, 0, len(events))
	for _, e := range events {
		if !matches(e, needle) {
			continue
		}
		if !inRange(e, start, end) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// SearchMatches reports whether term is a case-insensitive substring of the
// event's title, description or location. An empty term matches everything.
func SearchMatches(e Event, term string) bool {
	return matches(e, strings.ToLower(term))
}

// InWindow reports whether the event's date falls inside the view window
// containing ref. Events with malformed dates are outside every window.
func InWindow(e Event, ref time.Time, view ViewMode) bool {
	start, end := Window(ref, view)
	return inRange(e, start, end)
}

// Window returns the first and last day of the view window containing ref.
// Weeks run Sunday through Saturday; anything other than ViewMonth is a week.
func Window(ref time.Time, view ViewMode) (first, last time.Time) {
	if view == ViewMonth {
		return dateutil.MonthRange(ref)
	}
	return dateutil.WeekRange(ref)
}

func matches(e Event, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) ||
		strings.Contains(strings.ToLower(e.Location), needle)
}

func inRange(e Event, first, last time.Time) bool {
	day, err := dateutil.ParseDateIn(e.Date, first.Location())
	if err != nil {
		return false
	}
	return !day.Before(first) && !day.After(last)
}
