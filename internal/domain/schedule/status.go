package schedule

import (
	"errors"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

var ErrInvalidStatus = errors.New("unknown appointment status")

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Transition reassigns the appointment status. Any status can be set
// from any other: completed and cancelled are terminal in intent only,
// and the edit path may re-open them. The data layer enforces no state
// machine here, matching the product's booking rules.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusScheduled:
		ap.CancelledAt = nil
		ap.CompletedAt = nil
	}

	return nil
}
