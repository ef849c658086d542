// Package dto holds the JSON shapes of the REST API. Field names are
// camelCase on the wire.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// PageResponse wraps any listing with its pagination envelope.
type PageResponse[T any] struct {
	Data         []T   `json:"data"`
	PageNumber   int   `json:"pageNumber"`
	PageSize     int   `json:"pageSize"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int64 `json:"totalPages"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AccountID int64     `json:"accountId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type AccountUpdate struct {
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type RouteCreate struct {
	DriverID      int64     `json:"driverId"`
	VehicleID     int64     `json:"vehicleId"`
	StartLocation string    `json:"startLocation"`
	EndLocation   string    `json:"endLocation"`
	DistanceKm    float64   `json:"estimatedDistanceKm"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

type RouteUpdate struct {
	DriverID      *int64     `json:"driverId,omitempty"`
	VehicleID     *int64     `json:"vehicleId,omitempty"`
	StartLocation *string    `json:"startLocation,omitempty"`
	EndLocation   *string    `json:"endLocation,omitempty"`
	DistanceKm    *float64   `json:"estimatedDistanceKm,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
}

type RouteAssign struct {
	DriverID int64 `json:"driverId"`
}

type Route struct {
	ID            int64     `json:"id"`
	DriverID      int64     `json:"driverId"`
	VehicleID     int64     `json:"vehicleId"`
	StartLocation string    `json:"startLocation"`
	EndLocation   string    `json:"endLocation"`
	DistanceKm    float64   `json:"estimatedDistanceKm"`
	ScheduledDate time.Time `json:"scheduledDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ParcelCreate struct {
	CustomerID  int64   `json:"customerId"`
	RouteID     int64   `json:"routeId"`
	WeightKg    float64 `json:"weightKg"`
	Description string  `json:"description,omitempty"`
}

type ParcelUpdate struct {
	CustomerID  *int64   `json:"customerId,omitempty"`
	RouteID     *int64   `json:"routeId,omitempty"`
	WeightKg    *float64 `json:"weightKg,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type ParcelStatusUpdate struct {
	Status string `json:"status"`
}

type Parcel struct {
	ID             int64     `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	CustomerID     int64     `json:"customerId"`
	RouteID        int64     `json:"routeId"`
	Status         string    `json:"status"`
	WeightKg       float64   `json:"weightKg"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
