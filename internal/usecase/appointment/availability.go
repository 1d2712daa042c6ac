package appointment

import (
	"context"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

type GetAvailability struct {
	repo schedule.Repository
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the free booking slots of a day for the requested
// duration. Only scheduled appointments count as busy; the result is
// advisory since double-booking stays permitted at create time.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	durationMin int,
) ([]schedule.TimeSlot, error) {

	loc := timezone.Location("")

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	aps, err := uc.repo.ListAppointmentsBetween(
		ctx,
		date,
		day.AddDate(0, 0, 1).Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	var busy []schedule.Interval
	for _, ap := range aps {
		if ap.Status != string(schedule.StatusScheduled) {
			continue
		}
		iv, err := schedule.AppointmentInterval(ap, loc)
		if err != nil {
			continue
		}
		busy = append(busy, iv)
	}

	slots := schedule.FreeSlots(day, durationMin, busy, schedule.DefaultWindow)
	if slots == nil {
		slots = []schedule.TimeSlot{}
	}

	return slots, nil
}
