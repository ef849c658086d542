package parcel

import "time"

type ParcelDB struct {
	ID             int64
	TrackingNumber string
	CustomerID     int64
	RouteID        int64
	Status         string
	WeightKg       float64
	Description    string
	CreatedAt      time.Time
}

type ParcelModifyDB struct {
	ID             *int64
	TrackingNumber *string
	CustomerID     *int64
	RouteID        *int64
	Status         *string
	WeightKg       *float64
	Description    *string
}
