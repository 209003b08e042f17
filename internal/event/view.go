package event

import (
	"errors"
	"strings"
)

// ErrInvalidViewMode is returned for unknown view names.
var ErrInvalidViewMode = errors.New("view must be 'week' or 'month'")

// ViewMode selects the date window used by Filter.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ParseViewMode parses a case-insensitive view name.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewWeek:
		return ViewWeek, nil
	case ViewMonth:
		return ViewMonth, nil
	default:
		return "", ErrInvalidViewMode
	}
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewMonth {
		return ViewWeek
	}
	return ViewMonth
}
