package parcel

import (
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidRouteID        = errors.New("invalid route id")
	ErrInvalidWeight         = errors.New("weight must be positive")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrParcelNotFound    = errors.New("parcel not found")
	ErrRouteNotFound     = errors.New("route not found")
	ErrUnauthorized      = errors.New("caller does not own the parcel's route")
	ErrForbidden         = errors.New("caller is not allowed to perform this operation")
	ErrParcelFinalized   = errors.New("parcel is delivered and can no longer change")
	ErrPrematureDelivery = errors.New("route is not scheduled for delivery yet")

	ErrInvalidTransition = errors.New("invalid status transition")

	ErrTrackingExhausted = errors.New("could not generate a unique tracking number")
)

// TransitionError reports the exact rejected from/to pair.
// errors.Is(err, ErrInvalidTransition) matches it.
type TransitionError struct {
	From entities.ParcelStatusType
	To   entities.ParcelStatusType
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
