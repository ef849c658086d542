package route_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.RouteUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	routeModify := entities.RouteModify{
		ID:            &id,
		DriverID:      updateDTO.DriverID,
		VehicleID:     updateDTO.VehicleID,
		StartLocation: updateDTO.StartLocation,
		EndLocation:   updateDTO.EndLocation,
		DistanceKm:    updateDTO.DistanceKm,
		ScheduledDate: updateDTO.ScheduledDate,
	}

	routeEntity, err := h.service.UpdateRoute(r.Context(), caller, routeModify)
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
		case errors.Is(err, route.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrDriverOverlap):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	routeDTO := dto.Route{
		ID:            routeEntity.ID,
		DriverID:      routeEntity.DriverID,
		VehicleID:     routeEntity.VehicleID,
		StartLocation: routeEntity.StartLocation,
		EndLocation:   routeEntity.EndLocation,
		DistanceKm:    routeEntity.DistanceKm,
		ScheduledDate: routeEntity.ScheduledDate,
		CreatedAt:     routeEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
