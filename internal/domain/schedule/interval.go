package schedule

import (
	"errors"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

var (
	ErrInvalidDuration = errors.New("duration must be a positive multiple of 15 minutes")
	ErrInvalidTime     = errors.New("invalid date or time")
	ErrOutOfWindow     = errors.New("interval outside the working window")
)

// Interval is the half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// ToInterval combines a calendar date ("2006-01-02"), a start time of
// day ("15:04") and a duration into an absolute half-open interval in
// the given location.
func ToInterval(date, startTime string, durationMin int, loc *time.Location) (Interval, error) {
	if durationMin <= 0 {
		return Interval{}, ErrInvalidDuration
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, loc)
	if err != nil {
		return Interval{}, ErrInvalidTime
	}

	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMin) * time.Minute),
	}, nil
}

// AppointmentInterval derives the absolute interval of a stored
// appointment.
func AppointmentInterval(ap models.Appointment, loc *time.Location) (Interval, error) {
	return ToInterval(ap.Date, ap.StartTime, ap.DurationMin, loc)
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// WithinWindow reports whether iv lies fully inside the working window
// of its own calendar day.
func WithinWindow(iv Interval, w WorkingWindow) bool {
	dayStart, dayEnd := w.Bounds(iv.Start)
	return !iv.Start.Before(dayStart) && !iv.End.After(dayEnd)
}
