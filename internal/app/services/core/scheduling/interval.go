package scheduling

import "smileworks-service/internal/pkg/utils"

// SubtractWindows removes every blocker from every window. Each blocker
// splits a surviving window into zero, one, or two remainder pieces: no split
// when disjoint, a left remainder when the blocker starts inside the window,
// a right remainder when it ends inside, and full removal when it covers the
// window. Blockers apply sequentially against the accumulated result; the
// final set does not depend on blocker order.
func SubtractWindows(windows []Window, blockers []Window) []Window {
	result := make([]Window, len(windows))
	copy(result, windows)

	for _, blocker := range blockers {
		next := make([]Window, 0, len(result))
		for _, w := range result {
			if blocker.End <= w.Start || blocker.Start >= w.End {
				next = append(next, w)
				continue
			}
			if blocker.Start > w.Start {
				next = append(next, Window{Start: w.Start, End: blocker.Start})
			}
			if blocker.End < w.End {
				next = append(next, Window{Start: blocker.End, End: w.End})
			}
		}
		result = next
	}
	return result
}

// ChopIntoSlots emits successive HH:MM start times at durationMinutes strides
// from each window's start. A trailing slot that would extend past the window
// end is discarded.
func ChopIntoSlots(windows []Window, durationMinutes int) []string {
	slots := []string{}
	for _, w := range windows {
		for cursor := w.Start; cursor+durationMinutes <= w.End; cursor += durationMinutes {
			slots = append(slots, utils.MinutesToClock(cursor))
		}
	}
	return slots
}
