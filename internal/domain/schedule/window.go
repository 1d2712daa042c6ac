package schedule

import "time"

// WorkingWindow bounds the bookable part of a day. Minutes are counted
// from midnight; the end bound is exclusive.
type WorkingWindow struct {
	StartMinute int
	EndMinute   int

	// SlotMinutes is the displayed slot height, StepMinutes the booking
	// granularity (two steps per displayed slot).
	SlotMinutes int
	StepMinutes int
}

// DefaultWindow matches the practice's calendar: 08:00-20:00, 30 minute
// slots, 15 minute booking steps.
var DefaultWindow = WorkingWindow{
	StartMinute: 8 * 60,
	EndMinute:   20 * 60,
	SlotMinutes: 30,
	StepMinutes: 15,
}

// Bounds resolves the window to absolute instants on the calendar day
// containing t.
func (w WorkingWindow) Bounds(t time.Time) (time.Time, time.Time) {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.Add(time.Duration(w.StartMinute) * time.Minute),
		midnight.Add(time.Duration(w.EndMinute) * time.Minute)
}
