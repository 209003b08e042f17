// Package event defines the calendar event types and the pure functions that
// filter, compare and validate them.
package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyID              = errors.New("id cannot be empty")
	ErrEmptyTitle           = errors.New("title cannot be empty")
	ErrInvalidDateFormat    = dateutil.ErrInvalidDateFormat
	ErrInvalidTimeFormat    = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart       = errors.New("end time must be after start time")
	ErrInvalidRepeat        = errors.New("repeat type must be none, daily, weekly, monthly or yearly")
	ErrInvalidInterval      = errors.New("repeat interval must be positive")
	ErrNegativeNotification = errors.New("notification time cannot be negative")
)

// RepeatType is the recurrence cadence of an event.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// Valid returns true if the repeat type is a known value.
func (r RepeatType) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	default:
		return false
	}
}

// Repeat is recurrence metadata. It is never expanded into instances here.
type Repeat struct {
	Type     RepeatType `toml:"type" json:"type"`
	Interval int        `toml:"interval" json:"interval"`
}

// Event is a single calendar entry. Values are treated as immutable snapshots.
type Event struct {
	ID               string `toml:"id" json:"id"`
	Title            string `toml:"title" json:"title"`
	Date             string `toml:"date" json:"date"`             // "YYYY-MM-DD"
	StartTime        string `toml:"start_time" json:"startTime"` // "HH:MM"
	EndTime          string `toml:"end_time" json:"endTime"`     // "HH:MM"
	Description      string `toml:"description" json:"description"`
	Location         string `toml:"location" json:"location"`
	Category         string `toml:"category" json:"category"`
	Repeat           Repeat `toml:"repeat" json:"repeat"`
	NotificationTime int    `toml:"notification_time" json:"notificationTime"` // minutes before start
}

// Source supplies a read-only snapshot of events.
type Source interface {
	Load(ctx context.Context) ([]Event, error)
}

// Validate checks the event the way the entry form does before saving.
// The core functions never require a valid event; this is for adapters.
func (e Event) Validate() error {
	if e.ID == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := dateutil.ParseDateIn(e.Date, time.UTC); err != nil {
		return fmt.Errorf("date %q: %w", e.Date, err)
	}
	if _, _, ok := parseClock(e.StartTime); !ok {
		return fmt.Errorf("start time %q: %w", e.StartTime, ErrInvalidTimeFormat)
	}
	if _, _, ok := parseClock(e.EndTime); !ok {
		return fmt.Errorf("end time %q: %w", e.EndTime, ErrInvalidTimeFormat)
	}
	if e.EndTime <= e.StartTime {
		return ErrEndBeforeStart
	}
	if !e.Repeat.Type.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidRepeat, e.Repeat.Type)
	}
	if e.Repeat.Type != RepeatNone && e.Repeat.Interval <= 0 {
		return ErrInvalidInterval
	}
	if e.NotificationTime < 0 {
		return ErrNegativeNotification
	}
	return nil
}

// Duration returns the event duration in minutes, 0 for malformed times.
func (e Event) Duration() int {
	start, end := TimeToMinutes(e.StartTime), TimeToMinutes(e.EndTime)
	if start < 0 || end < 0 || end < start {
		return 0
	}
	return end - start
}

// IsRecurring returns true if the event repeats.
func (e Event) IsRecurring() bool {
	return e.Repeat.Type != "" && e.Repeat.Type != RepeatNone
}
