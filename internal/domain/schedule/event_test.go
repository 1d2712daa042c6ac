package schedule

import (
	"testing"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

func TestProjectEvents_OneEventPerAppointment(t *testing.T) {
	aps := []models.Appointment{
		{
			ID:          "a1",
			Date:        "2026-03-02",
			StartTime:   "10:00",
			DurationMin: 60,
			Status:      "scheduled",
			Client:      models.Client{FirstName: "Marie", LastName: "Dupont"},
		},
		{
			ID:          "a2",
			Date:        "2026-03-02",
			StartTime:   "10:00",
			DurationMin: 60,
			Status:      "cancelled",
			Client:      models.Client{FirstName: "Jean", LastName: "Martin"},
		},
	}

	events := ProjectEvents(aps, time.UTC)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	seen := map[string]bool{}
	for _, ev := range events {
		if seen[ev.AppointmentID] {
			t.Fatalf("duplicate event for appointment %s", ev.AppointmentID)
		}
		seen[ev.AppointmentID] = true
	}

	if events[0].Title != "Marie Dupont" {
		t.Fatalf("expected client full name title, got %q", events[0].Title)
	}
	if !events[0].End.Equal(events[0].Start.Add(time.Hour)) {
		t.Fatalf("expected end = start + 60min, got %v -> %v", events[0].Start, events[0].End)
	}
}

func TestProjectEvents_UnresolvedClientTitle(t *testing.T) {
	aps := []models.Appointment{
		{
			ID:          "a1",
			Date:        "2026-03-02",
			StartTime:   "09:00",
			DurationMin: 30,
			Status:      "scheduled",
		},
	}

	events := ProjectEvents(aps, time.UTC)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "" {
		t.Fatalf("expected empty title for unresolved client, got %q", events[0].Title)
	}
}

func TestStyleFor(t *testing.T) {
	if st := StyleFor(StatusScheduled); st.Color != "#10B981" || st.Opacity != 1 {
		t.Fatalf("unexpected scheduled style: %+v", st)
	}
	if st := StyleFor(StatusCompleted); st.Color != "#059669" || st.Opacity != 1 {
		t.Fatalf("unexpected completed style: %+v", st)
	}
	if st := StyleFor(StatusCancelled); st.Color != "#EF4444" || st.Opacity != 0.7 {
		t.Fatalf("unexpected cancelled style: %+v", st)
	}
	if st := StyleFor(Status("bogus")); st != StyleFor(StatusScheduled) {
		t.Fatalf("unknown status must fall back to the scheduled style")
	}
}
