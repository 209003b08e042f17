package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/sosodev/duration"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

// ICSFile reads VEVENTs from an iCalendar file.
//
// Each VEVENT becomes one Event on the local wall clock. RRULE is reduced to
// repeat metadata and never expanded, overridden instances (RECURRENCE-ID)
// are skipped, and the first VALARM trigger becomes the notification lead
// time.
type ICSFile struct {
	Path string
}

// Load reads and converts the file.
func (f ICSFile) Load(ctx context.Context) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading event file: %w", err)
	}
	return ParseICS(data)
}

// ParseICS converts an iCalendar payload into events.
func ParseICS(body []byte) ([]event.Event, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing ICS: %w", err)
	}

	events := make([]event.Event, 0)
	for _, ve := range cal.Events() {
		if ve.GetProperty("RECURRENCE-ID") != nil {
			continue
		}
		events = append(events, convertVEvent(ve))
	}
	fillIDs(events)
	return events, nil
}

func convertVEvent(ve *ical.VEvent) event.Event {
	e := event.Event{
		ID:          propValue(ve, ical.ComponentPropertyUniqueId),
		Title:       propValue(ve, ical.ComponentPropertySummary),
		Description: propValue(ve, ical.ComponentPropertyDescription),
		Location:    propValue(ve, ical.ComponentPropertyLocation),
		Category:    firstCategory(propValue(ve, ical.ComponentPropertyCategories)),
		Repeat:      parseRepeat(propValue(ve, ical.ComponentPropertyRrule)),
	}

	start, allDay, startOK := eventTime(ve, ical.ComponentPropertyDtStart)
	end, _, endOK := eventTime(ve, ical.ComponentPropertyDtEnd)

	switch {
	case !startOK:
		// Left empty; the core treats the event as invalid.
	case allDay:
		e.Date = start.Format(dateutil.DateLayout)
		e.StartTime, e.EndTime = "00:00", "23:59"
	default:
		e.Date = start.Format(dateutil.DateLayout)
		e.StartTime = start.Format("15:04")
		e.EndTime = e.StartTime
		if endOK {
			// Events are single-day records; clamp spill-over to the day's end.
			if dateutil.TruncateToDay(end).After(dateutil.TruncateToDay(start)) {
				e.EndTime = "23:59"
			} else {
				e.EndTime = end.Format("15:04")
			}
		}
	}

	for _, alarm := range ve.Alarms() {
		if p := alarm.GetProperty(ical.ComponentPropertyTrigger); p != nil {
			if minutes, ok := parseTrigger(p.Value); ok {
				e.NotificationTime = minutes
				break
			}
		}
	}

	return e
}

func propValue(ve *ical.VEvent, prop ical.ComponentProperty) string {
	if p := ve.GetProperty(prop); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}

func firstCategory(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}

// eventTime reads DTSTART/DTEND in local time. Values carrying a TZID or a
// UTC suffix go through the library's timezone handling; floating values
// are read as local wall-clock time.
func eventTime(ve *ical.VEvent, prop ical.ComponentProperty) (t time.Time, allDay, ok bool) {
	p := ve.GetProperty(prop)
	if p == nil || p.Value == "" {
		return time.Time{}, false, false
	}
	val := strings.TrimSpace(p.Value)

	if !strings.Contains(val, "T") {
		d, err := time.ParseInLocation("20060102", val, time.Local)
		return d, true, err == nil
	}

	_, hasTZ := p.ICalParameters["TZID"]
	if hasTZ || strings.HasSuffix(val, "Z") {
		var err error
		if prop == ical.ComponentPropertyDtEnd {
			t, err = ve.GetEndAt()
		} else {
			t, err = ve.GetStartAt()
		}
		if err != nil {
			return time.Time{}, false, false
		}
		return t.In(time.Local), false, true
	}

	t, err := time.ParseInLocation("20060102T150405", val, time.Local)
	return t, false, err == nil
}

// parseRepeat reduces an RRULE to cadence and interval.
func parseRepeat(raw string) event.Repeat {
	none := event.Repeat{Type: event.RepeatNone, Interval: 1}
	if raw == "" {
		return none
	}
	opt, err := rrule.StrToROption(raw)
	if err != nil {
		return none
	}

	interval := opt.Interval
	if interval <= 0 {
		interval = 1
	}
	switch opt.Freq {
	case rrule.DAILY:
		return event.Repeat{Type: event.RepeatDaily, Interval: interval}
	case rrule.WEEKLY:
		return event.Repeat{Type: event.RepeatWeekly, Interval: interval}
	case rrule.MONTHLY:
		return event.Repeat{Type: event.RepeatMonthly, Interval: interval}
	case rrule.YEARLY:
		return event.Repeat{Type: event.RepeatYearly, Interval: interval}
	default:
		return none
	}
}

// maxTriggerLead caps trigger leads so they always fit an int.
const maxTriggerLead = math.MaxInt32

// parseTrigger converts a relative VALARM trigger such as "-PT15M" or
// "-P1DT2H" into lead minutes. Triggers after the start are not leads, and
// year or month designators have no fixed length.
func parseTrigger(v string) (int, bool) {
	v = strings.ToUpper(strings.TrimSpace(v))
	before := strings.HasPrefix(v, "-")
	v = strings.TrimPrefix(strings.TrimPrefix(v, "-"), "+")
	// A trailing number or bare designator carries no amount.
	if v == "P" || v == "" || strings.IndexAny(v[len(v)-1:], "WDHMS") < 0 {
		return 0, false
	}

	d, err := duration.Parse(v)
	if err != nil || d.Years != 0 || d.Months != 0 {
		return 0, false
	}
	minutes := d.Weeks*7*24*60 + d.Days*24*60 + d.Hours*60 + d.Minutes + d.Seconds/60
	if minutes < 0 {
		return 0, false
	}
	if !before {
		if minutes == 0 {
			return 0, true
		}
		return 0, false
	}
	if minutes >= maxTriggerLead {
		return maxTriggerLead, true
	}
	return int(minutes), true
}
