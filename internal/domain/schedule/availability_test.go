package schedule

import (
	"testing"
	"time"
)

func TestFreeSlots_EmptyDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := FreeSlots(day, 30, nil, DefaultWindow)
	if len(slots) == 0 {
		t.Fatalf("expected slots on an empty day")
	}

	// 08:00 through 19:30 at a 15 minute step.
	if slots[0].Start != "08:00" || slots[0].End != "08:30" {
		t.Fatalf("unexpected first slot %+v", slots[0])
	}
	last := slots[len(slots)-1]
	if last.Start != "19:30" || last.End != "20:00" {
		t.Fatalf("unexpected last slot %+v", last)
	}
	if slots[1].Start != "08:15" {
		t.Fatalf("expected 15 minute step, second slot starts %s", slots[1].Start)
	}
}

func TestFreeSlots_SkipsBusyIntervals(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	busy := []Interval{
		mustInterval(t, "2026-03-02", "09:00", 60),
	}

	slots := FreeSlots(day, 30, busy, DefaultWindow)

	for _, s := range slots {
		switch s.Start {
		case "08:45", "09:00", "09:15", "09:30", "09:45":
			t.Fatalf("slot %+v overlaps the busy 09:00-10:00 interval", s)
		}
	}

	found := map[string]bool{}
	for _, s := range slots {
		found[s.Start] = true
	}
	if !found["08:30"] || !found["10:00"] {
		t.Fatalf("expected slots touching the busy bounds to survive, got %v", found)
	}
}

func TestFreeSlots_InvalidDuration(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if slots := FreeSlots(day, 0, nil, DefaultWindow); slots != nil {
		t.Fatalf("expected nil for zero duration, got %v", slots)
	}
}
