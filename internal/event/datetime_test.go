package event

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	t.Run("valid date and time", func(t *testing.T) {
		got := ParseDateTime("2024-07-01", "14:30")
		want := time.Date(2024, 7, 1, 14, 30, 0, 0, time.Local)
		gotTime, ok := got.Time()
		if !ok {
			t.Fatal("expected valid DateTime")
		}
		if !gotTime.Equal(want) {
			t.Errorf("got %v, want %v", gotTime, want)
		}
	})

	invalid := []struct {
		name  string
		date  string
		clock string
	}{
		{name: "malformed date", date: "2024-07-3a", clock: "14:30"},
		{name: "malformed date and time", date: "2024-07-3a", clock: "14:3c"},
		{name: "malformed time", date: "2024-07-01", clock: "14:3c"},
		{name: "empty date", date: "", clock: "14:30"},
		{name: "empty date malformed time", date: "", clock: "14:3c"},
		{name: "day out of range", date: "2024-07-43", clock: "14:30"},
		{name: "hour out of range", date: "2024-07-01", clock: "28:30"},
		{name: "minute out of range", date: "2024-07-01", clock: "14:60"},
		{name: "single digit hour", date: "2024-07-01", clock: "9:30"},
		{name: "empty time", date: "2024-07-01", clock: ""},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDateTime(tt.date, tt.clock)
			if got.Valid() {
				t.Errorf("ParseDateTime(%q, %q) = %v, want invalid", tt.date, tt.clock, got)
			}
			if got != InvalidDateTime {
				t.Errorf("expected the InvalidDateTime sentinel, got %#v", got)
			}
		})
	}
}

func TestParseDateTimeIn(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	got, ok := ParseDateTimeIn("2024-11-01", "09:50", loc).Time()
	if !ok {
		t.Fatal("expected valid DateTime")
	}
	want := time.Date(2024, 11, 1, 0, 50, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeComparisons(t *testing.T) {
	a := ParseDateTime("2024-07-01", "10:00")
	b := ParseDateTime("2024-07-01", "11:00")

	if !a.Before(b) || b.Before(a) {
		t.Error("expected 10:00 before 11:00")
	}
	if !b.After(a) || a.After(b) {
		t.Error("expected 11:00 after 10:00")
	}
	if !a.Equal(ParseDateTime("2024-07-01", "10:00")) {
		t.Error("expected equal instants to compare equal")
	}

	for _, other := range []DateTime{a, b, InvalidDateTime} {
		if InvalidDateTime.Before(other) || other.Before(InvalidDateTime) {
			t.Errorf("Before with invalid should be false (other=%v)", other)
		}
		if InvalidDateTime.After(other) || other.After(InvalidDateTime) {
			t.Errorf("After with invalid should be false (other=%v)", other)
		}
		if InvalidDateTime.Equal(other) {
			t.Errorf("Equal with invalid should be false (other=%v)", other)
		}
	}

	if InvalidDateTime.Add(time.Hour).Valid() {
		t.Error("Add on invalid should stay invalid")
	}
	if got := a.Add(-10 * time.Minute); !got.Equal(ParseDateTime("2024-07-01", "09:50")) {
		t.Errorf("Add = %v, want 09:50", got)
	}
	if got := InvalidDateTime.String(); got != "Invalid Date" {
		t.Errorf("String = %q", got)
	}
}

func TestToRange(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		wantStart DateTime
		wantEnd   DateTime
	}{
		{
			name:      "regular event",
			event:     newEvent("1adf", "2024-07-01", "14:30", "15:30"),
			wantStart: At(time.Date(2024, 7, 1, 14, 30, 0, 0, time.Local)),
			wantEnd:   At(time.Date(2024, 7, 1, 15, 30, 0, 0, time.Local)),
		},
		{
			name:      "malformed date",
			event:     newEvent("1adf", "2024-07-43", "14:30", "15:30"),
			wantStart: InvalidDateTime,
			wantEnd:   InvalidDateTime,
		},
		{
			name:      "malformed times",
			event:     newEvent("1adf", "2024-07-01", "28:30", "32:30"),
			wantStart: InvalidDateTime,
			wantEnd:   InvalidDateTime,
		},
		{
			name:      "only end malformed",
			event:     newEvent("1adf", "2024-07-01", "14:30", "15:3x"),
			wantStart: At(time.Date(2024, 7, 1, 14, 30, 0, 0, time.Local)),
			wantEnd:   InvalidDateTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRange(tt.event)
			if got.Start.Valid() != tt.wantStart.Valid() || (got.Start.Valid() && !got.Start.Equal(tt.wantStart)) {
				t.Errorf("start = %v, want %v", got.Start, tt.wantStart)
			}
			if got.End.Valid() != tt.wantEnd.Valid() || (got.End.Valid() && !got.End.Equal(tt.wantEnd)) {
				t.Errorf("end = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"24:00", -1},
		{"9:30", -1},
		{"ab:cd", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := TimeToMinutes(tt.in); got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{-5, "00:00"},
		{24 * 60, "23:59"},
	}
	for _, tt := range tests {
		if got := MinutesToTime(tt.in); got != tt.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// newEvent builds a minimal event with the fields the time functions read.
func newEvent(id, date, start, end string) Event {
	return Event{
		ID:               id,
		Title:            "Test Event",
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		Description:      "Test Description",
		Location:         "Test Location",
		Category:         "Test Category",
		Repeat:           Repeat{Type: RepeatNone, Interval: 1},
		NotificationTime: 10,
	}
}
