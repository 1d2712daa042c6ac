package appointment

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/httperr"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

// fakeRepo is an in-memory schedule.Repository for scenario tests.
type fakeRepo struct {
	appointments map[string]models.Appointment
	clients      map[string]models.Client
	nextID       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[string]models.Appointment{},
		clients:      map[string]models.Client{},
	}
}

func (r *fakeRepo) addClient(id, first, last string) {
	r.clients[id] = models.Client{ID: id, FirstName: first, LastName: last}
}

func (r *fakeRepo) sorted() []models.Appointment {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		if c, ok := r.clients[ap.ClientID]; ok {
			ap.Client = c
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (r *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return r.sorted(), nil
}

func (r *fakeRepo) ListAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.sorted() {
		if ap.Date >= from && ap.Date < to {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	if c, ok := r.clients[ap.ClientID]; ok {
		ap.Client = c
	}
	return &ap, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = "ap-" + time.Now().Format("150405") + "-" + string(rune('a'+r.nextID))
	if c, ok := r.clients[ap.ClientID]; ok {
		ap.Client = c
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errors.New("record not found")
	}
	if c, ok := r.clients[ap.ClientID]; ok {
		ap.Client = c
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id string) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) GetClient(ctx context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &c, nil
}

func (r *fakeRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// Scenarios
// ------------------------------------------------------

func TestCreateThenList(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")

	create := NewCreateAppointment(repo, nil, nil)
	list := NewListAppointments(repo)

	_, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID:    "c1",
		Date:        "2026-03-02",
		StartTime:   "10:00",
		DurationMin: 60,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	aps, err := list.Execute(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(aps) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(aps))
	}
	if aps[0].Status != "scheduled" {
		t.Fatalf("expected scheduled status, got %q", aps[0].Status)
	}

	if aps[0].ClientName != "Marie Dupont" {
		t.Fatalf("expected client name Marie Dupont, got %q", aps[0].ClientName)
	}
	if aps[0].EndTime != "11:00" {
		t.Fatalf("expected end time 11:00, got %q", aps[0].EndTime)
	}
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")

	create := NewCreateAppointment(repo, nil, nil)

	_, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID: "c1", Date: "2026-03-02", StartTime: "10:00", DurationMin: 10,
	})
	if !errors.Is(err, schedule.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}

	_, err = create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID: "c1", Date: "2026-03-02", StartTime: "07:30", DurationMin: 30,
	})
	if !errors.Is(err, schedule.ErrOutOfWindow) {
		t.Fatalf("expected ErrOutOfWindow, got %v", err)
	}

	_, err = create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID: "nope", Date: "2026-03-02", StartTime: "10:00", DurationMin: 30,
	})
	if !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("expected client_not_found, got %v", err)
	}

	if len(repo.appointments) != 0 {
		t.Fatalf("failed creates must not persist anything")
	}
}

func TestDoubleBookingPermitted(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")
	repo.addClient("c2", "Jean", "Martin")

	create := NewCreateAppointment(repo, nil, nil)

	for _, clientID := range []string{"c1", "c2"} {
		_, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
			ClientID:    clientID,
			Date:        "2026-03-02",
			StartTime:   "14:00",
			DurationMin: 45,
		})
		if err != nil {
			t.Fatalf("create for %s: %v", clientID, err)
		}
	}

	if len(repo.appointments) != 2 {
		t.Fatalf("fully overlapping appointments must both persist, got %d", len(repo.appointments))
	}
}

func TestCancelThenReopen(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")

	create := NewCreateAppointment(repo, nil, nil)
	cancel := NewCancelAppointment(repo, nil, nil)
	update := NewUpdateAppointment(repo, nil, nil)

	ap, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID: "c1", Date: "2026-03-02", StartTime: "10:00", DurationMin: 30,
		Notes: "suivi",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := cancel.Execute(context.Background(), "u1", ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != "cancelled" || cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", cancelled)
	}
	if cancelled.Notes != "suivi" || cancelled.StartTime != "10:00" {
		t.Fatalf("cancel must be status-only, got %+v", cancelled)
	}

	// No terminal-state enforcement: the edit path may re-open it.
	reopened, err := update.Execute(context.Background(), "u1", ap.ID, UpdateAppointmentInput{
		ClientID: "c1", Date: "2026-03-02", StartTime: "10:00", DurationMin: 30,
		Status: "scheduled", Notes: "suivi",
	})
	if err != nil {
		t.Fatalf("re-open: %v", err)
	}
	if reopened.Status != "scheduled" || reopened.CancelledAt != nil {
		t.Fatalf("expected re-opened appointment, got %+v", reopened)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")

	create := NewCreateAppointment(repo, nil, nil)
	del := NewDeleteAppointment(repo, nil, nil)

	ap, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID: "c1", Date: "2026-03-02", StartTime: "10:00", DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := del.Execute(context.Background(), "u1", ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Fatalf("expected store empty after delete")
	}

	if err := del.Execute(context.Background(), "u1", ap.ID); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCalendarEventsRange(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")

	create := NewCreateAppointment(repo, nil, nil)
	calendar := NewCalendarEvents(repo, nil)

	for _, day := range []string{"2026-03-02", "2026-03-09"} {
		if _, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
			ClientID: "c1", Date: day, StartTime: "09:00", DurationMin: 30,
		}); err != nil {
			t.Fatalf("create %s: %v", day, err)
		}
	}

	events, err := calendar.Execute(context.Background(), "2026-03-01", "2026-03-08")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event in range, got %d", len(events))
	}
	if events[0].Title != "Marie Dupont" {
		t.Fatalf("expected joined client title, got %q", events[0].Title)
	}
}

func TestAvailabilityMarksBusySlots(t *testing.T) {
	repo := newFakeRepo()
	repo.addClient("c1", "Marie", "Dupont")

	create := NewCreateAppointment(repo, nil, nil)
	avail := NewGetAvailability(repo)

	if _, err := create.Execute(context.Background(), "u1", CreateAppointmentInput{
		ClientID: "c1", Date: "2026-03-02", StartTime: "09:00", DurationMin: 60,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	slots, err := avail.Execute(context.Background(), "2026-03-02", 30)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	for _, s := range slots {
		if s.Start == "09:00" || s.Start == "09:30" {
			t.Fatalf("slot %s must be busy", s.Start)
		}
	}
}
