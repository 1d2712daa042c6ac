package appointment

import (
	"context"

	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/cache"
	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

// CancelAppointment is the dedicated cancel action: a status-only
// update to cancelled, leaving every other field untouched.
type CancelAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCancelAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := schedule.Transition(ap, schedule.StatusCancelled, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateCalendar(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
