package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var routeDTO dto.RouteCreate
	err := json.NewDecoder(r.Body).Decode(&routeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeModify := entities.RouteModify{
		DriverID:      &routeDTO.DriverID,
		VehicleID:     &routeDTO.VehicleID,
		StartLocation: &routeDTO.StartLocation,
		EndLocation:   &routeDTO.EndLocation,
		DistanceKm:    &routeDTO.DistanceKm,
		ScheduledDate: &routeDTO.ScheduledDate,
	}

	routeEntity, err := h.service.CreateRoute(r.Context(), caller, routeModify)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, route.ErrMissingRequiredFields),
			errors.Is(err, route.ErrInvalidDriverID),
			errors.Is(err, route.ErrInvalidVehicleID),
			errors.Is(err, route.ErrInvalidLocation),
			errors.Is(err, route.ErrInvalidDistance),
			errors.Is(err, route.ErrPastDate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, route.ErrDriverOverlap):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toRouteDTO(routeEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toRouteDTO(routeEntity *entities.Route) dto.Route {
	return dto.Route{
		ID:            routeEntity.ID,
		DriverID:      routeEntity.DriverID,
		VehicleID:     routeEntity.VehicleID,
		StartLocation: routeEntity.StartLocation,
		EndLocation:   routeEntity.EndLocation,
		DistanceKm:    routeEntity.DistanceKm,
		ScheduledDate: routeEntity.ScheduledDate,
		CreatedAt:     routeEntity.CreatedAt,
	}
}
