package schedule

import "time"

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots lists the start times inside the working window of day
// where a booking of durationMin would not overlap any busy interval.
// Candidates advance at the window's booking step. The busy list is
// expected sorted by start time (the repository lists in that order).
func FreeSlots(day time.Time, durationMin int, busy []Interval, w WorkingWindow) []TimeSlot {
	if durationMin <= 0 {
		return nil
	}

	dayStart, dayEnd := w.Bounds(day)
	slotDuration := time.Duration(durationMin) * time.Minute
	step := time.Duration(w.StepMinutes) * time.Minute

	var slots []TimeSlot
	busyIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(step) {
		candidate := Interval{Start: cur, End: cur.Add(slotDuration)}

		for busyIdx < len(busy) && !busy[busyIdx].End.After(candidate.Start) {
			busyIdx++
		}

		conflict := false
		for i := busyIdx; i < len(busy); i++ {
			if !busy[i].Start.Before(candidate.End) {
				break
			}
			if Overlaps(candidate, busy[i]) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: candidate.Start.Format("15:04"),
				End:   candidate.End.Format("15:04"),
			})
		}
	}

	return slots
}
