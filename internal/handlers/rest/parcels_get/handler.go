package parcels_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/parcel"
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
	if _, ok := auth.CallerFromContext(r.Context()); !ok {
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

	parcelsPage, err := h.service.SearchParcels(r.Context(), filter, entities.PageRequest{
		Number: page,
		Size:   size,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := make([]dto.Parcel, len(parcelsPage.Items))
	for i, parcelEntity := range parcelsPage.Items {
		items[i] = dto.Parcel{
			ID:             parcelEntity.ID,
			TrackingNumber: parcelEntity.TrackingNumber,
			CustomerID:     parcelEntity.CustomerID,
			RouteID:        parcelEntity.RouteID,
			Status:         parcelEntity.Status.String(),
			WeightKg:       parcelEntity.WeightKg,
			Description:    parcelEntity.Description,
			CreatedAt:      parcelEntity.CreatedAt,
		}
	}

	response := dto.PageResponse[dto.Parcel]{
		Data:         items,
		PageNumber:   parcelsPage.Number,
		PageSize:     parcelsPage.Size,
		TotalRecords: parcelsPage.TotalRecords,
		TotalPages:   parcelsPage.TotalPages,
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

func parseFilter(r *http.Request) (parcel.Filter, error) {
	var filter parcel.Filter
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status := entities.ParcelStatusType(raw)
		if !status.IsValid() {
			return parcel.Filter{}, parcel.ErrInvalidStatus
		}
		filter.Status = &status
	}
	if raw := query.Get("routeId"); raw != "" {
		routeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return parcel.Filter{}, err
		}
		filter.RouteID = &routeID
	}
	if raw := query.Get("customerId"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return parcel.Filter{}, err
		}
		filter.CustomerID = &customerID
	}
	if raw := query.Get("tracking"); raw != "" {
		tracking := raw
		filter.Tracking = &tracking
	}

	return filter, nil
}
