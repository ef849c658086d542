package routes_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

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

	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	routesPage, err := h.service.GetRoutes(r.Context(), caller, filter, entities.PageRequest{
		Number: page,
		Size:   size,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := make([]dto.Route, len(routesPage.Items))
	for i, routeEntity := range routesPage.Items {
		items[i] = dto.Route{
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

	response := dto.PageResponse[dto.Route]{
		Data:         items,
		PageNumber:   routesPage.Number,
		PageSize:     routesPage.Size,
		TotalRecords: routesPage.TotalRecords,
		TotalPages:   routesPage.TotalPages,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (route.Filter, error) {
	var filter route.Filter
	query := r.URL.Query()

	if raw := query.Get("driverId"); raw != "" {
		driverID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return route.Filter{}, err
		}
		filter.DriverID = &driverID
	}
	if raw := query.Get("dateFrom"); raw != "" {
		dateFrom, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return route.Filter{}, err
		}
		filter.DateFrom = &dateFrom
	}
	if raw := query.Get("dateTo"); raw != "" {
		dateTo, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return route.Filter{}, err
		}
		filter.DateTo = &dateTo
	}

	return filter, nil
}
