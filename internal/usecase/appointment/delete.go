package appointment

import (
	"context"

	"github.com/DjapsSparrow/Kine-siologie/internal/audit"
	"github.com/DjapsSparrow/Kine-siologie/internal/cache"
	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
)

type DeleteAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewDeleteAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.cache.InvalidateCalendar(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
