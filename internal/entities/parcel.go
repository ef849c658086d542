package entities

import "time"

type Parcel struct {
	ID             int64
	TrackingNumber string
	CustomerID     int64
	RouteID        int64
	Status         ParcelStatusType
	WeightKg       float64
	Description    string
	CreatedAt      time.Time
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelInTransit ParcelStatusType = "in_transit"
	ParcelDelivered ParcelStatusType = "delivered"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// CanTransitionTo encodes the parcel lifecycle: pending -> in_transit -> delivered,
// strictly forward, one step at a time. Delivered is terminal.
func (s ParcelStatusType) CanTransitionTo(target ParcelStatusType) bool {
	switch s {
	case ParcelPending:
		return target == ParcelInTransit
	case ParcelInTransit:
		return target == ParcelDelivered
	default:
		return false
	}
}

func (s ParcelStatusType) IsValid() bool {
	switch s {
	case ParcelPending, ParcelInTransit, ParcelDelivered:
		return true
	default:
		return false
	}
}

type ParcelModify struct {
	ID             *int64
	TrackingNumber *string
	CustomerID     *int64
	RouteID        *int64
	Status         *ParcelStatusType
	WeightKg       *float64
	Description    *string
}

// ParcelStatusChanged is the event published after a successful status transition.
type ParcelStatusChanged struct {
	ParcelID       int64
	TrackingNumber string
	From           ParcelStatusType
	To             ParcelStatusType
	OccurredAt     time.Time
}

// RouteInfo is the subset of a route the parcel service learns through the
// route validation gateway.
type RouteInfo struct {
	ID            int64
	DriverID      int64
	ScheduledDate time.Time
}
