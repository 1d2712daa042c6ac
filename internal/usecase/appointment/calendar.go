package appointment

import (
	"context"

	"github.com/DjapsSparrow/Kine-siologie/internal/cache"
	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

type CalendarEvents struct {
	repo  schedule.Repository
	cache *cache.Cache
}

func NewCalendarEvents(
	repo schedule.Repository,
	cache *cache.Cache,
) *CalendarEvents {
	return &CalendarEvents{
		repo:  repo,
		cache: cache,
	}
}

// Execute projects the appointments of [fromDate, toDate) into calendar
// events. Results are cached briefly; mutations invalidate the cache.
func (uc *CalendarEvents) Execute(
	ctx context.Context,
	fromDate string,
	toDate string,
) ([]schedule.CalendarEvent, error) {

	var cached []schedule.CalendarEvent
	if uc.cache.GetCalendar(ctx, fromDate, toDate, &cached) {
		return cached, nil
	}

	aps, err := uc.repo.ListAppointmentsBetween(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	events := schedule.ProjectEvents(aps, timezone.Location(""))

	uc.cache.SetCalendar(ctx, fromDate, toDate, events)

	return events, nil
}
