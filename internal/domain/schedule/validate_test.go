package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestValidateNew(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		start    string
		duration int
		want     error
	}{
		{"accepts 30min within window", "2026-03-02", "10:00", 30, nil},
		{"accepts slot ending at close", "2026-03-02", "19:00", 60, nil},
		{"rejects non multiple of 15", "2026-03-02", "10:00", 10, ErrInvalidDuration},
		{"rejects negative duration", "2026-03-02", "10:00", -15, ErrInvalidDuration},
		{"rejects zero duration", "2026-03-02", "10:00", 0, ErrInvalidDuration},
		{"rejects start before open", "2026-03-02", "07:45", 30, ErrOutOfWindow},
		{"rejects end past close", "2026-03-02", "19:45", 30, ErrOutOfWindow},
		{"rejects unparseable time", "2026-03-02", "1000", 30, ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNew(tc.date, tc.start, tc.duration, DefaultWindow, time.UTC)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
