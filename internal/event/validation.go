package event

import "errors"

// Time ordering errors reported by ValidateTimes.
var (
	ErrStartNotBeforeEnd = errors.New("start time must be earlier than end time")
	ErrEndNotAfterStart  = errors.New("end time must be later than start time")
)

// TimeErrors holds per-field validation results. Nil means the field is fine.
type TimeErrors struct {
	Start error
	End   error
}

// OK reports whether neither field has an error.
func (te TimeErrors) OK() bool {
	return te.Start == nil && te.End == nil
}

// Err joins both field errors, nil when OK.
func (te TimeErrors) Err() error {
	return errors.Join(te.Start, te.End)
}

// ValidateTimes checks that start precedes end. Empty input on either side is
// not yet an error: the form is still being filled in.
func ValidateTimes(start, end string) TimeErrors {
	if start == "" || end == "" {
		return TimeErrors{}
	}
	if start >= end {
		return TimeErrors{Start: ErrStartNotBeforeEnd, End: ErrEndNotAfterStart}
	}
	return TimeErrors{}
}
