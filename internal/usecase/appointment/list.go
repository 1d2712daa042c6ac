package appointment

import (
	"context"

	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/dto"
	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

type ListAppointments struct {
	repo schedule.Repository
}

func NewListAppointments(repo schedule.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment joined with its client, ordered by
// date then start time ascending. The list and calendar views are two
// projections of this same collection.
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location("")

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		item := dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			DurationMin: ap.DurationMin,
			Status:      ap.Status,
			ClientName:  ap.Client.FullName(),
			Notes:       ap.Notes,
		}
		if iv, err := schedule.AppointmentInterval(ap, loc); err == nil {
			item.EndTime = iv.End.In(loc).Format("15:04")
		}
		out = append(out, item)
	}

	return out, nil
}
