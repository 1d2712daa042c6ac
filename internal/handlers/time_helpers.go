package handlers

import (
	"time"

	"github.com/DjapsSparrow/Kine-siologie/internal/timezone"
)

// All stored dates and times are interpreted in the practice timezone.

func parsePracticeDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(""),
	)
}
