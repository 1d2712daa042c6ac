package schedule

import (
	"errors"
	"testing"
	"time"
)

func mustInterval(t *testing.T, date, start string, durationMin int) Interval {
	t.Helper()
	iv, err := ToInterval(date, start, durationMin, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return iv
}

func TestToInterval_EndAfterStart(t *testing.T) {
	iv := mustInterval(t, "2026-03-02", "10:00", 60)

	if !iv.End.After(iv.Start) {
		t.Fatalf("expected End after Start, got %v", iv)
	}
	if iv.Duration() != time.Hour {
		t.Fatalf("expected 1h duration, got %v", iv.Duration())
	}
	if iv.Start.Hour() != 10 || iv.End.Hour() != 11 {
		t.Fatalf("expected 10:00-11:00, got %v-%v", iv.Start, iv.End)
	}
}

func TestToInterval_InvalidDuration(t *testing.T) {
	for _, d := range []int{0, -15} {
		if _, err := ToInterval("2026-03-02", "10:00", d, time.UTC); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("duration %d: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestToInterval_BadTime(t *testing.T) {
	if _, err := ToInterval("2026-03-02", "25:99", 30, time.UTC); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestOverlaps_TouchingEndpoints(t *testing.T) {
	a := mustInterval(t, "2026-03-02", "09:00", 30)
	b := mustInterval(t, "2026-03-02", "09:30", 30)

	if Overlaps(a, b) {
		t.Fatalf("touching half-open intervals must not overlap")
	}
	if Overlaps(b, a) {
		t.Fatalf("overlap must be symmetric")
	}
}

func TestOverlaps_Containment(t *testing.T) {
	a := mustInterval(t, "2026-03-02", "09:00", 60)
	b := mustInterval(t, "2026-03-02", "09:30", 15)

	if !Overlaps(a, b) || !Overlaps(b, a) {
		t.Fatalf("contained interval must overlap")
	}
}

func TestWithinWindow_Bounds(t *testing.T) {
	before := mustInterval(t, "2026-03-02", "07:59", 30)
	if WithinWindow(before, DefaultWindow) {
		t.Fatalf("07:59 start must be rejected")
	}

	atOpen := mustInterval(t, "2026-03-02", "08:00", 30)
	if !WithinWindow(atOpen, DefaultWindow) {
		t.Fatalf("08:00 start must be accepted")
	}

	atClose := mustInterval(t, "2026-03-02", "19:30", 30)
	if !WithinWindow(atClose, DefaultWindow) {
		t.Fatalf("19:30+30min ends exactly at the bound and must be accepted")
	}

	pastClose := mustInterval(t, "2026-03-02", "19:45", 30)
	if WithinWindow(pastClose, DefaultWindow) {
		t.Fatalf("interval ending past 20:00 must be rejected")
	}
}
