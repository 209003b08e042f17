package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseDateIn_Rejects(t *testing.T) {
	inputs := []string{"2024-07-3a", "2024-07-43", "2024-13-01", "2024-7-1", "", "2024-07-01 "}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseDateIn(in, time.UTC); !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDateIn(%q) error = %v, want %v", in, err, ErrInvalidDateFormat)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid date range", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "2025-01-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectedStart := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
		expectedEnd := time.Date(2025, 1, 20, 0, 0, 0, 0, time.Local)
		if !dr.Start.Equal(expectedStart) {
			t.Errorf("got start %v, want %v", dr.Start, expectedStart)
		}
		if !dr.End.Equal(expectedEnd) {
			t.Errorf("got end %v, want %v", dr.End, expectedEnd)
		}
	})

	t.Run("empty end defaults to start", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dr.Start.Equal(dr.End) {
			t.Errorf("expected start and end to be equal, got %v and %v", dr.Start, dr.End)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange("2025-01-20", "2025-01-15")
		if !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndDateBeforeStart)
		}
	})
}

func TestDateRangeContains(t *testing.T) {
	dr, err := NewDateRange("2025-01-15", "2025-01-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"first day late evening", time.Date(2025, 1, 15, 23, 0, 0, 0, time.Local), true},
		{"last day", time.Date(2025, 1, 17, 8, 0, 0, 0, time.Local), true},
		{"day before", time.Date(2025, 1, 14, 23, 59, 0, 0, time.Local), false},
		{"day after", time.Date(2025, 1, 18, 0, 0, 0, 0, time.Local), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dr.Contains(tt.in); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name         string
		input        time.Time
		wantSunday   time.Time
		wantSaturday time.Time
	}{
		{
			name:         "Sunday input returns same Sunday",
			input:        time.Date(2024, 10, 27, 10, 30, 0, 0, time.UTC),
			wantSunday:   time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC),
			wantSaturday: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "Friday crosses month boundary",
			input:        time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC),
			wantSunday:   time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC),
			wantSaturday: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "Thursday first of August",
			input:        time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			wantSunday:   time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC),
			wantSaturday: time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "Saturday is last day",
			input:        time.Date(2024, 11, 2, 23, 59, 0, 0, time.UTC),
			wantSunday:   time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC),
			wantSaturday: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSunday, gotSaturday := WeekRange(tt.input)
			if !gotSunday.Equal(tt.wantSunday) {
				t.Errorf("sunday: got %v, want %v", gotSunday, tt.wantSunday)
			}
			if !gotSaturday.Equal(tt.wantSaturday) {
				t.Errorf("saturday: got %v, want %v", gotSaturday, tt.wantSaturday)
			}
		})
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "november",
			input:     time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC),
			wantFirst: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "leap february",
			input:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantFirst: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december",
			input:     time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
			wantFirst: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthRange(tt.input)
			if !first.Equal(tt.wantFirst) {
				t.Errorf("first: got %v, want %v", first, tt.wantFirst)
			}
			if !last.Equal(tt.wantLast) {
				t.Errorf("last: got %v, want %v", last, tt.wantLast)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	got := TruncateToDay(input)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Reference date: Friday, January 10, 2025
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "empty returns today", input: "", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "TODAY uppercase", input: "TODAY", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "tomorrow", input: "tomorrow", want: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)},
		{name: "yesterday", input: "yesterday", want: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
		{name: "next-week", input: "next-week", want: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{name: "last-week", input: "last-week", want: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
		{name: "sunday from friday", input: "sunday", want: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)},
		{name: "friday from friday is next week", input: "friday", want: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{name: "next-monday", input: "next-monday", want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{name: "absolute past date allowed", input: "2024-11-01", want: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
		{name: "unknown next prefix", input: "next-month", wantErr: ErrInvalidDateFormat},
		{name: "garbage", input: "someday", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, friday)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
