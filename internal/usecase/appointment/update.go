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

type UpdateAppointmentInput struct {
	ClientID    string
	Date        string
	StartTime   string
	DurationMin int
	Status      string
	Notes       string
}

type UpdateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewUpdateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute applies a full edit. The status may be reassigned to any
// value, including re-opening a completed or cancelled appointment.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location("")

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.ValidateNew(
		in.Date,
		in.StartTime,
		in.DurationMin,
		schedule.DefaultWindow,
		loc,
	); err != nil {
		return nil, err
	}

	if in.ClientID != "" && in.ClientID != ap.ClientID {
		if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = in.ClientID
	}

	ap.Date = in.Date
	ap.StartTime = in.StartTime
	ap.DurationMin = in.DurationMin
	ap.Notes = in.Notes

	now := timezone.Now()
	if err := schedule.Transition(ap, schedule.Status(in.Status), now); err != nil {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateCalendar(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
