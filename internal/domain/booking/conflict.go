package booking

import "sort"

// HasConflict reports whether candidate overlaps any window in existing.
// existing is scanned in full; no ordering is assumed.
func HasConflict(candidate TimeWindow, existing []TimeWindow) bool {
	for _, w := range existing {
		if candidate.Overlaps(w) {
			return true
		}
	}
	return false
}

// FreeWindows returns the gaps of the day [00:00, 24:00) not covered by taken, in ascending order.
func FreeWindows(date Date, taken []TimeWindow) []TimeWindow {
	sorted := make([]TimeWindow, len(taken))
	copy(sorted, taken)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start < sorted[j].start
	})

	var free []TimeWindow
	cursor := StartOfDay
	for _, w := range sorted {
		if w.start > cursor {
			free = append(free, TimeWindow{date: date, start: cursor, end: w.start})
		}
		if w.end > cursor {
			cursor = w.end
		}
	}
	if cursor < EndOfDay {
		free = append(free, TimeWindow{date: date, start: cursor, end: EndOfDay})
	}
	return free
}
