package reservation

// Conflicts reports whether candidate overlaps any of the existing stays.
// Every stay is checked; an empty room never conflicts.
func Conflicts(candidate Stay, existing []Stay) bool {
	_, found := FirstConflict(candidate, existing)
	return found
}

// FirstConflict returns the first booked stay that overlaps candidate.
func FirstConflict(candidate Stay, existing []Stay) (Stay, bool) {
	for _, booked := range existing {
		if candidate.Overlaps(booked) {
			return booked, true
		}
	}
	return Stay{}, false
}
