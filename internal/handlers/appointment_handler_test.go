package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DjapsSparrow/Kine-siologie/internal/domain/schedule"
	"github.com/DjapsSparrow/Kine-siologie/internal/middleware"
	"github.com/DjapsSparrow/Kine-siologie/internal/models"
	ucAppointment "github.com/DjapsSparrow/Kine-siologie/internal/usecase/appointment"
)

// ------------------------------------------------------
// In-memory store
// ------------------------------------------------------

type stubRepo struct {
	appointments map[string]models.Appointment
	clients      map[string]models.Client
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		appointments: map[string]models.Appointment{},
		clients:      map[string]models.Client{},
	}
}

func (r *stubRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		out = append(out, ap)
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date >= from && ap.Date < to {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *stubRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &ap, nil
}

func (r *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *stubRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errors.New("record not found")
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *stubRepo) DeleteAppointment(ctx context.Context, id string) error {
	delete(r.appointments, id)
	return nil
}

func (r *stubRepo) GetClient(ctx context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &c, nil
}

func (r *stubRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

var _ schedule.Repository = (*stubRepo)(nil)

// ------------------------------------------------------
// Router under test
// ------------------------------------------------------

func newAppointmentRouter(repo schedule.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u1")
	})

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, nil, nil),
		ucAppointment.NewUpdateAppointment(repo, nil, nil),
		ucAppointment.NewCancelAppointment(repo, nil, nil),
		ucAppointment.NewCompleteAppointment(repo, nil, nil),
		ucAppointment.NewDeleteAppointment(repo, nil, nil),
		ucAppointment.NewListAppointments(repo),
		ucAppointment.NewCalendarEvents(repo, nil),
		ucAppointment.NewGetAvailability(repo),
	)

	r.PATCH("/appointments/:id/cancel", h.Cancel)
	r.DELETE("/appointments/:id", h.Delete)
	return r
}

func seedAppointment(repo *stubRepo, id string) {
	repo.clients["c1"] = models.Client{ID: "c1", FirstName: "Marie", LastName: "Dupont"}
	repo.appointments[id] = models.Appointment{
		ID:          id,
		ClientID:    "c1",
		Date:        "2026-03-02",
		StartTime:   "10:00",
		DurationMin: 30,
		Status:      "scheduled",
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func assertNotConfirmed(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a declined confirmation, got %d (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	confirmed, ok := resp["confirmed"].(bool)
	if !ok || confirmed {
		t.Fatalf("expected {\"confirmed\": false}, got %s", w.Body.String())
	}
}

// ------------------------------------------------------
// Scenarios
// ------------------------------------------------------

func TestCancelRequiresConfirmation(t *testing.T) {
	repo := newStubRepo()
	seedAppointment(repo, "ap1")
	r := newAppointmentRouter(repo)

	// Declined confirmation is a silent no-op.
	w := doRequest(t, r, http.MethodPatch, "/appointments/ap1/cancel")
	assertNotConfirmed(t, w)
	if repo.appointments["ap1"].Status != "scheduled" {
		t.Fatalf("unconfirmed cancel must not change the store, got %q", repo.appointments["ap1"].Status)
	}

	// Confirmed cancel goes through.
	w = doRequest(t, r, http.MethodPatch, "/appointments/ap1/cancel?confirm=true")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for confirmed cancel, got %d (%s)", w.Code, w.Body.String())
	}
	if repo.appointments["ap1"].Status != "cancelled" {
		t.Fatalf("expected cancelled after confirmation, got %q", repo.appointments["ap1"].Status)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	repo := newStubRepo()
	seedAppointment(repo, "ap1")
	r := newAppointmentRouter(repo)

	w := doRequest(t, r, http.MethodDelete, "/appointments/ap1")
	assertNotConfirmed(t, w)
	if _, ok := repo.appointments["ap1"]; !ok {
		t.Fatalf("unconfirmed delete must not remove the appointment")
	}

	w = doRequest(t, r, http.MethodDelete, "/appointments/ap1?confirm=true")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for confirmed delete, got %d (%s)", w.Code, w.Body.String())
	}
	if _, ok := repo.appointments["ap1"]; ok {
		t.Fatalf("expected appointment removed after confirmed delete")
	}

	// Deleting again surfaces the business error, not a silent pass.
	w = doRequest(t, r, http.MethodDelete, "/appointments/ap1?confirm=true")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing appointment, got %d (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error_code"] != "appointment_not_found" {
		t.Fatalf("expected appointment_not_found, got %s", w.Body.String())
	}
}
