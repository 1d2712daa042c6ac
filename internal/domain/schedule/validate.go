package schedule

import "time"

// ValidateNew checks a prospective appointment before it is persisted:
// the duration must be a positive multiple of 15 minutes and the
// derived interval must sit fully inside the working window.
//
// Overlap with existing appointments is deliberately NOT rejected; the
// practice allows double-booking and the availability listing is
// advisory only.
func ValidateNew(date, startTime string, durationMin int, w WorkingWindow, loc *time.Location) error {
	if durationMin <= 0 || durationMin%15 != 0 {
		return ErrInvalidDuration
	}

	iv, err := ToInterval(date, startTime, durationMin, loc)
	if err != nil {
		return err
	}

	if !WithinWindow(iv, w) {
		return ErrOutOfWindow
	}

	return nil
}
