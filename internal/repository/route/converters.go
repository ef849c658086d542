package route

import (
	"dispatch/internal/entities"
)

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}

	return &entities.Route{
		ID:            r.ID,
		DriverID:      r.DriverID,
		VehicleID:     r.VehicleID,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		DistanceKm:    r.DistanceKm,
		ScheduledDate: r.ScheduledDate,
		CreatedAt:     r.CreatedAt,
	}
}

func FromDomainModify(routeModify *entities.RouteModify) *RouteModifyDB {
	if routeModify == nil {
		return nil
	}

	return &RouteModifyDB{
		ID:            routeModify.ID,
		DriverID:      routeModify.DriverID,
		VehicleID:     routeModify.VehicleID,
		StartLocation: routeModify.StartLocation,
		EndLocation:   routeModify.EndLocation,
		DistanceKm:    routeModify.DistanceKm,
		ScheduledDate: routeModify.ScheduledDate,
	}
}

func ToDomainList(routesDB []RouteDB) []entities.Route {
	if len(routesDB) == 0 {
		return []entities.Route{}
	}

	result := make([]entities.Route, len(routesDB))
	for i, routeDB := range routesDB {
		result[i] = *ToDomain(&routeDB)
	}
	return result
}
