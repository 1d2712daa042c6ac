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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID    string
	Date        string
	StartTime   string
	DurationMin int
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCreateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute validates the candidate against the working window and
// persists it. Overlap with other appointments is not checked: the
// practice allows double-booking on purpose.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID string,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location("")

	if err := schedule.ValidateNew(
		in.Date,
		in.StartTime,
		in.DurationMin,
		schedule.DefaultWindow,
		loc,
	); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	ap := &models.Appointment{
		ClientID:    in.ClientID,
		Date:        in.Date,
		StartTime:   in.StartTime,
		DurationMin: in.DurationMin,
		Status:      string(schedule.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateCalendar(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
