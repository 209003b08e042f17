package event

import (
	"fmt"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// DateTime is a point in time that may be invalid.
// The zero value is InvalidDateTime. Every comparison involving an invalid
// value is false, so malformed events drop out of predicates instead of
// aborting them.
type DateTime struct {
	t     time.Time
	valid bool
}

// InvalidDateTime is the result of parsing malformed input.
var InvalidDateTime = DateTime{}

// At wraps an existing time as a valid DateTime.
func At(t time.Time) DateTime {
	return DateTime{t: t, valid: true}
}

// Valid reports whether the value holds a real instant.
func (d DateTime) Valid() bool {
	return d.valid
}

// Time returns the instant and whether it is valid.
func (d DateTime) Time() (time.Time, bool) {
	return d.t, d.valid
}

// Before reports whether d is strictly before o.
func (d DateTime) Before(o DateTime) bool {
	return d.valid && o.valid && d.t.Before(o.t)
}

// After reports whether d is strictly after o.
func (d DateTime) After(o DateTime) bool {
	return d.valid && o.valid && d.t.After(o.t)
}

// Equal reports whether both values are valid and the same instant.
func (d DateTime) Equal(o DateTime) bool {
	return d.valid && o.valid && d.t.Equal(o.t)
}

// Add returns d shifted by dur. Invalid stays invalid.
func (d DateTime) Add(dur time.Duration) DateTime {
	if !d.valid {
		return InvalidDateTime
	}
	return At(d.t.Add(dur))
}

func (d DateTime) String() string {
	if !d.valid {
		return "Invalid Date"
	}
	return d.t.Format("2006-01-02 15:04")
}

// ParseDateTime combines a YYYY-MM-DD date and an HH:MM clock time into a
// local point in time. Malformed input yields InvalidDateTime.
func ParseDateTime(date, clock string) DateTime {
	return ParseDateTimeIn(date, clock, time.Local)
}

// ParseDateTimeIn is ParseDateTime in an explicit location.
func ParseDateTimeIn(date, clock string, loc *time.Location) DateTime {
	day, err := dateutil.ParseDateIn(date, loc)
	if err != nil {
		return InvalidDateTime
	}
	hour, minute, ok := parseClock(clock)
	if !ok {
		return InvalidDateTime
	}
	return At(time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc))
}

// Range is the start/end pair of a single event.
type Range struct {
	Start DateTime
	End   DateTime
}

// ToRange converts an event's date and clock times into a Range.
// Either end may be invalid; the pair is always returned.
func ToRange(e Event) Range {
	return Range{
		Start: ParseDateTime(e.Date, e.StartTime),
		End:   ParseDateTime(e.Date, e.EndTime),
	}
}

// parseClock parses a strict "HH:MM" 24-hour clock time.
func parseClock(s string) (hour, minute int, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, false
		}
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns -1 for invalid input.
func TimeToMinutes(t string) int {
	hour, minute, ok := parseClock(t)
	if !ok {
		return -1
	}
	return hour*60 + minute
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
