package route

import "time"

type RouteDB struct {
	ID            int64
	DriverID      int64
	VehicleID     int64
	StartLocation string
	EndLocation   string
	DistanceKm    float64
	ScheduledDate time.Time
	CreatedAt     time.Time
}

type RouteModifyDB struct {
	ID            *int64
	DriverID      *int64
	VehicleID     *int64
	StartLocation *string
	EndLocation   *string
	DistanceKm    *float64
	ScheduledDate *time.Time
}
