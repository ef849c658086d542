//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

// Filter narrows list queries. A nil DriverID means no driver restriction.
type Filter struct {
	DriverID *int64
	DateFrom *time.Time
	DateTo   *time.Time
}

type Repository interface {
	Create(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error)
	GetByID(ctx context.Context, id int64) (*entities.Route, error)
	Update(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter Filter, page entities.PageRequest) ([]entities.Route, int64, error)

	// ExistsForDriverOnDate reports whether the driver already has a route on
	// the same UTC calendar date. excludeRouteID of zero excludes nothing.
	ExistsForDriverOnDate(ctx context.Context, driverID int64, date time.Time, excludeRouteID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
