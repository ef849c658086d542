package route

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Route struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Route {
	return &Route{
		repository: repository,
		txManager:  txManager,
	}
}

// HasOverlap is the single source of truth for the one-route-per-driver-per-day
// rule. Create, update and reassignment all consult it.
func (s *Route) HasOverlap(ctx context.Context, driverID int64, date time.Time, excludeRouteID int64) (bool, error) {
	exists, err := s.repository.ExistsForDriverOnDate(ctx, driverID, date, excludeRouteID)
	if err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}
	return exists, nil
}

func (s *Route) CreateRoute(ctx context.Context, caller entities.Caller, routeModify entities.RouteModify) (*entities.Route, error) {
	if !caller.IsStaff() {
		return nil, ErrForbidden
	}

	if routeModify.DriverID == nil ||
		routeModify.VehicleID == nil ||
		routeModify.StartLocation == nil ||
		routeModify.EndLocation == nil ||
		routeModify.DistanceKm == nil ||
		routeModify.ScheduledDate == nil {
		return nil, ErrMissingRequiredFields
	}

	if *routeModify.DriverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if *routeModify.VehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if !isValidLocation(*routeModify.StartLocation) || !isValidLocation(*routeModify.EndLocation) {
		return nil, ErrInvalidLocation
	}
	if *routeModify.DistanceKm <= 0 {
		return nil, ErrInvalidDistance
	}
	if isPastDate(*routeModify.ScheduledDate, time.Now()) {
		return nil, ErrPastDate
	}

	var created *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		overlap, err := s.HasOverlap(ctx, *routeModify.DriverID, *routeModify.ScheduledDate, 0)
		if err != nil {
			return err
		}
		if overlap {
			return ErrDriverOverlap
		}

		created, err = s.repository.Create(ctx, routeModify)
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRoute applies a partial patch. When the patch touches the driver or
// the scheduled date, the overlap rule is re-validated against the effective
// driver/date pair, excluding the route itself.
func (s *Route) UpdateRoute(ctx context.Context, caller entities.Caller, routeModify entities.RouteModify) (*entities.Route, error) {
	if !caller.IsStaff() {
		return nil, ErrForbidden
	}
	if routeModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if routeModify.DriverID == nil &&
		routeModify.VehicleID == nil &&
		routeModify.StartLocation == nil &&
		routeModify.EndLocation == nil &&
		routeModify.DistanceKm == nil &&
		routeModify.ScheduledDate == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if routeModify.DriverID != nil && *routeModify.DriverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if routeModify.VehicleID != nil && *routeModify.VehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if routeModify.StartLocation != nil && !isValidLocation(*routeModify.StartLocation) {
		return nil, ErrInvalidLocation
	}
	if routeModify.EndLocation != nil && !isValidLocation(*routeModify.EndLocation) {
		return nil, ErrInvalidLocation
	}
	if routeModify.DistanceKm != nil && *routeModify.DistanceKm <= 0 {
		return nil, ErrInvalidDistance
	}

	var updated *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *routeModify.ID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		driverID := current.DriverID
		if routeModify.DriverID != nil {
			driverID = *routeModify.DriverID
		}
		date := current.ScheduledDate
		if routeModify.ScheduledDate != nil {
			date = *routeModify.ScheduledDate
		}

		scheduleChanged := driverID != current.DriverID ||
			!entities.SameCalendarDay(date, current.ScheduledDate)
		if scheduleChanged {
			overlap, err := s.HasOverlap(ctx, driverID, date, current.ID)
			if err != nil {
				return err
			}
			if overlap {
				return ErrDriverOverlap
			}
		}

		updated, err = s.repository.Update(ctx, routeModify)
		if err != nil {
			return fmt.Errorf("update route: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AssignDriver moves the route to a new driver, keeping the route identity.
func (s *Route) AssignDriver(ctx context.Context, caller entities.Caller, routeID, newDriverID int64) (*entities.Route, error) {
	if !caller.IsStaff() {
		return nil, ErrForbidden
	}
	if newDriverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	var updated *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		overlap, err := s.HasOverlap(ctx, newDriverID, current.ScheduledDate, current.ID)
		if err != nil {
			return err
		}
		if overlap {
			return ErrDriverOverlap
		}

		patch := entities.RouteModify{
			ID:       &current.ID,
			DriverID: &newDriverID,
		}
		updated, err = s.repository.Update(ctx, patch)
		if err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetRoute returns a single route. Driver callers may only read their own.
func (s *Route) GetRoute(ctx context.Context, caller entities.Caller, id int64) (*entities.Route, error) {
	routeEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	if caller.Role == entities.RoleDriver && routeEntity.DriverID != caller.AccountID {
		return nil, ErrForbidden
	}
	return routeEntity, nil
}

// GetRoutes lists routes with pagination. Driver callers are pinned to their
// own routes regardless of the requested filter.
func (s *Route) GetRoutes(ctx context.Context, caller entities.Caller, filter Filter, page entities.PageRequest) (*entities.Page[entities.Route], error) {
	page = page.Normalized()

	if caller.Role == entities.RoleDriver {
		filter.DriverID = &caller.AccountID
	}

	routes, total, err := s.repository.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	result := entities.NewPage(routes, page, total)
	return &result, nil
}

// DeleteRoute removes the route for good. Admin only; routes are not assumed
// to back historical data the way accounts are.
func (s *Route) DeleteRoute(ctx context.Context, caller entities.Caller, id int64) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete route: %w", err)
	}
	return nil
}
