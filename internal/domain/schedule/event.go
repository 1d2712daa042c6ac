package schedule

import (
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

// CalendarEvent is the display projection of an appointment. It is
// derived on every read and never persisted.
type CalendarEvent struct {
	AppointmentID string     `json:"appointment_id"`
	Title         string     `json:"title"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Status        Status     `json:"status"`
	Style         EventStyle `json:"style"`
}

// EventStyle is the presentation intent of a status, not layout.
type EventStyle struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Colors follow the practice UI palette.
var statusStyles = map[Status]EventStyle{
	StatusScheduled: {Color: "#10B981", Opacity: 1},
	StatusCompleted: {Color: "#059669", Opacity: 1},
	StatusCancelled: {Color: "#EF4444", Opacity: 0.7},
}

// StyleFor maps a status to its presentation intent. Unknown statuses
// render like scheduled ones.
func StyleFor(status Status) EventStyle {
	if st, ok := statusStyles[status]; ok {
		return st
	}
	return statusStyles[StatusScheduled]
}

// ProjectEvents derives one calendar event per appointment. The title
// is the joined client's full name; an unresolved client reference
// yields an empty title rather than an error. Records whose stored
// time fields cannot be parsed are dropped.
func ProjectEvents(appointments []models.Appointment, loc *time.Location) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(appointments))

	for _, ap := range appointments {
		iv, err := AppointmentInterval(ap, loc)
		if err != nil {
			continue
		}

		status := Status(ap.Status)
		events = append(events, CalendarEvent{
			AppointmentID: ap.ID,
			Title:         ap.Client.FullName(),
			Start:         iv.Start,
			End:           iv.End,
			Status:        status,
			Style:         StyleFor(status),
		})
	}

	return events
}
