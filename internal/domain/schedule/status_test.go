package schedule

import (
	"testing"
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/models"
)

func TestTransition_NoTerminalEnforcement(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Transition(ap, StatusCancelled, now); err != nil {
		t.Fatalf("scheduled -> cancelled: %v", err)
	}
	if ap.Status != "cancelled" || ap.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", ap)
	}

	// Re-opening through the edit path is allowed.
	if err := Transition(ap, StatusScheduled, now); err != nil {
		t.Fatalf("cancelled -> scheduled: %v", err)
	}
	if ap.Status != "scheduled" || ap.CancelledAt != nil {
		t.Fatalf("expected re-opened appointment, got %+v", ap)
	}
}

func TestTransition_Completed(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatalf("scheduled -> completed: %v", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("expected CompletedAt = now, got %v", ap.CompletedAt)
	}
}

func TestTransition_RejectsUnknownStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Transition(ap, Status("archived"), time.Now()); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if ap.Status != "scheduled" {
		t.Fatalf("status must be unchanged after a rejected transition")
	}
}
