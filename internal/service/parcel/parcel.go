package parcel

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Parcel struct {
	repository Repository
	gateway    RouteGateway
	publisher  EventPublisher
	txManager  TxManager

	validateRouteOnCreate bool
}

func New(
	repository Repository,
	gateway RouteGateway,
	publisher EventPublisher,
	txManager TxManager,
	validateRouteOnCreate bool,
) *Parcel {
	return &Parcel{
		repository:            repository,
		gateway:               gateway,
		publisher:             publisher,
		txManager:             txManager,
		validateRouteOnCreate: validateRouteOnCreate,
	}
}

// CreateParcel accepts a new parcel in Pending state with a fresh,
// collision-checked tracking number. Route existence is confirmed through the
// gateway unless disabled by configuration.
func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.CustomerID == nil || parcelModify.RouteID == nil || parcelModify.WeightKg == nil {
		return nil, ErrMissingRequiredFields
	}
	if *parcelModify.CustomerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if *parcelModify.RouteID <= 0 {
		return nil, ErrInvalidRouteID
	}
	if *parcelModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	if s.validateRouteOnCreate {
		if err := s.confirmRouteExists(ctx, *parcelModify.RouteID); err != nil {
			return nil, err
		}
	}

	trackingNumber, err := s.newTrackingNumber(ctx)
	if err != nil {
		return nil, err
	}

	status := entities.ParcelPending
	parcelModify.TrackingNumber = &trackingNumber
	parcelModify.Status = &status

	created, err := s.repository.Create(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return created, nil
}

// UpdateStatus advances the parcel through its lifecycle. Driver callers must
// own the parcel's route; staff bypass the ownership check. Delivery is
// additionally gated on the route's scheduled date having arrived.
func (s *Parcel) UpdateStatus(ctx context.Context, caller entities.Caller, parcelID int64, newStatus entities.ParcelStatusType) (*entities.Parcel, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	var (
		updated    *entities.Parcel
		fromStatus entities.ParcelStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		fromStatus = current.Status

		var routeInfo *entities.RouteInfo
		if caller.Role == entities.RoleDriver {
			routeInfo, err = s.gateway.GetRoute(ctx, current.RouteID)
			if err != nil || routeInfo == nil || routeInfo.DriverID != caller.AccountID {
				// A failed or inconclusive remote check denies, it never approves.
				return ErrUnauthorized
			}
		}

		if !current.Status.CanTransitionTo(newStatus) {
			return &TransitionError{From: current.Status, To: newStatus}
		}

		if newStatus == entities.ParcelDelivered {
			if routeInfo == nil {
				routeInfo, err = s.gateway.GetRoute(ctx, current.RouteID)
				if err != nil || routeInfo == nil {
					return ErrPrematureDelivery
				}
			}
			if isFutureDate(routeInfo.ScheduledDate, time.Now()) {
				return ErrPrematureDelivery
			}
		}

		updated, err = s.repository.UpdateStatus(ctx, parcelID, newStatus)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Advisory event; the producer logs its own failures.
	_ = s.publisher.PublishStatusChanged(ctx, entities.ParcelStatusChanged{
		ParcelID:       updated.ID,
		TrackingNumber: updated.TrackingNumber,
		From:           fromStatus,
		To:             updated.Status,
		OccurredAt:     time.Now().UTC(),
	})

	return updated, nil
}

// UpdateParcelFields applies a partial patch to a non-delivered parcel.
// Status never changes through this path.
func (s *Parcel) UpdateParcelFields(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if parcelModify.CustomerID == nil &&
		parcelModify.RouteID == nil &&
		parcelModify.WeightKg == nil &&
		parcelModify.Description == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if parcelModify.CustomerID != nil && *parcelModify.CustomerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if parcelModify.RouteID != nil && *parcelModify.RouteID <= 0 {
		return nil, ErrInvalidRouteID
	}
	if parcelModify.WeightKg != nil && *parcelModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	// Tracking number and status are not patchable.
	parcelModify.TrackingNumber = nil
	parcelModify.Status = nil

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *parcelModify.ID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if current.Status == entities.ParcelDelivered {
			return ErrParcelFinalized
		}

		if parcelModify.RouteID != nil && *parcelModify.RouteID != current.RouteID {
			if err := s.confirmRouteExists(ctx, *parcelModify.RouteID); err != nil {
				return err
			}
		}

		updated, err = s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return parcelEntity, nil
}

func (s *Parcel) SearchParcels(ctx context.Context, filter Filter, page entities.PageRequest) (*entities.Page[entities.Parcel], error) {
	page = page.Normalized()

	parcels, total, err := s.repository.Search(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("search parcels: %w", err)
	}

	result := entities.NewPage(parcels, page, total)
	return &result, nil
}

// DeleteParcel removes the record for good. Admin only.
func (s *Parcel) DeleteParcel(ctx context.Context, caller entities.Caller, id int64) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete parcel: %w", err)
	}
	return nil
}

// confirmRouteExists maps any gateway failure to ErrRouteNotFound: the remote
// check either proves the route or the parcel is rejected.
func (s *Parcel) confirmRouteExists(ctx context.Context, routeID int64) error {
	routeInfo, err := s.gateway.GetRoute(ctx, routeID)
	if err != nil || routeInfo == nil {
		return ErrRouteNotFound
	}
	return nil
}

// isFutureDate compares UTC calendar dates; same-day delivery is allowed.
func isFutureDate(scheduled, now time.Time) bool {
	sy, sm, sd := scheduled.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	scheduledDay := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return scheduledDay.After(today)
}
