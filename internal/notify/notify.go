// Package notify selects events whose reminder is due and delivers reminders
// on a schedule.
package notify

import (
	"fmt"
	"math"
	"time"

	"github.com/javiermolinar/agenda/internal/event"
)

// Upcoming returns the events whose reminder window is open at now:
// start minus the lead time is at or before now, and the event has not
// started yet. Events listed in notified are skipped. Order is preserved.
func Upcoming(events []event.Event, now time.Time, notified []string) []event.Event {
	skip := make(map[string]struct{}, len(notified))
	for _, id := range notified {
		skip[id] = struct{}{}
	}

	at := event.At(now)
	result := make([]event.Event, 0)
	for _, e := range events {
		if _, done := skip[e.ID]; done {
			continue
		}
		if isDue(e, at) {
			result = append(result, e)
		}
	}
	return result
}

func isDue(e event.Event, now event.DateTime) bool {
	start := event.ToRange(e).Start
	if !start.Valid() {
		return false
	}
	if !now.Before(start) {
		return false
	}
	st, _ := start.Time()
	at, _ := now.Time()
	// Leads too long to express as a Duration cover any earlier instant.
	if int64(e.NotificationTime) >= maxLeadMinutes {
		return true
	}
	return st.Sub(at) <= time.Duration(e.NotificationTime)*time.Minute
}

const maxLeadMinutes = math.MaxInt64 / int64(time.Minute)

// Message formats the reminder shown for an event.
func Message(e event.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}
