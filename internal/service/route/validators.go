package route

import (
	"strings"
	"time"
)

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

// isPastDate compares UTC calendar dates only; a route scheduled for later
// today is not past.
func isPastDate(scheduled, now time.Time) bool {
	sy, sm, sd := scheduled.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	scheduledDay := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return scheduledDay.Before(today)
}
