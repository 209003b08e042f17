package event

// Overlaps reports whether two ranges intersect.
// Ranges are half open: one ending exactly when the other starts does not
// overlap. Any invalid endpoint makes the result false.
func Overlaps(a, b Range) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// IsOverlapping reports whether two events' time ranges intersect.
func IsOverlapping(a, b Event) bool {
	return Overlaps(ToRange(a), ToRange(b))
}

// FindOverlapping returns the events in existing that overlap candidate, in
// input order. Entries sharing the candidate's ID are skipped so an event
// being edited never conflicts with its own stored copy.
func FindOverlapping(candidate Event, existing []Event) []Event {
	want := ToRange(candidate)
	result := make([]Event, 0)
	for _, e := range existing {
		if e.ID == candidate.ID {
			continue
		}
		if Overlaps(want, ToRange(e)) {
			result = append(result, e)
		}
	}
	return result
}
