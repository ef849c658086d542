package route

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidDistance       = errors.New("distance must be positive")

	ErrPastDate      = errors.New("scheduled date is in the past")
	ErrDriverOverlap = errors.New("driver already has a route on this date")

	ErrRouteNotFound = errors.New("route not found")
	ErrForbidden     = errors.New("caller is not allowed to perform this operation")
)
