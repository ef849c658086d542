//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"dispatch/internal/entities"
)

// Filter narrows parcel searches; nil fields are ignored.
type Filter struct {
	Status     *entities.ParcelStatusType
	RouteID    *int64
	CustomerID *int64
	Tracking   *string
}

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ParcelStatusType) (*entities.Parcel, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter Filter, page entities.PageRequest) ([]entities.Parcel, int64, error)
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)
}

// RouteGateway is the route validation capability backed by a call into the
// route service. Any transport or shape failure surfaces as an error and is
// treated by this service as "route unknown" (conservative deny).
type RouteGateway interface {
	GetRoute(ctx context.Context, routeID int64) (*entities.RouteInfo, error)
}

// EventPublisher announces committed status transitions. Publishing is
// advisory; a failed publish never rolls back the transition.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.ParcelStatusChanged) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
