package route

import (
	"time"

	"dispatch/internal/entities"
)

// routeResponse mirrors the route service's GET /api/v1/routes/{id} payload.
// Fields beyond the validation contract are ignored on decode.
type routeResponse struct {
	ID            int64     `json:"id"`
	DriverID      int64     `json:"driverId"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

func toDomain(resp *routeResponse) *entities.RouteInfo {
	if resp == nil {
		return nil
	}

	return &entities.RouteInfo{
		ID:            resp.ID,
		DriverID:      resp.DriverID,
		ScheduledDate: resp.ScheduledDate,
	}
}
