package entities

import "time"

type Route struct {
	ID            int64
	DriverID      int64
	VehicleID     int64
	StartLocation string
	EndLocation   string
	DistanceKm    float64
	ScheduledDate time.Time
	CreatedAt     time.Time
}

type RouteModify struct {
	ID            *int64
	DriverID      *int64
	VehicleID     *int64
	StartLocation *string
	EndLocation   *string
	DistanceKm    *float64
	ScheduledDate *time.Time
}

// SameCalendarDay reports whether two instants fall on the same UTC calendar date.
// Time of day is ignored everywhere the overlap rule applies.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
