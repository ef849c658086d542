package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var parcelDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModify := entities.ParcelModify{
		CustomerID:  &parcelDTO.CustomerID,
		RouteID:     &parcelDTO.RouteID,
		WeightKg:    &parcelDTO.WeightKg,
		Description: &parcelDTO.Description,
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), parcelModify)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidCustomerID),
			errors.Is(err, parcel.ErrInvalidRouteID),
			errors.Is(err, parcel.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrRouteNotFound):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, parcel.ErrTrackingExhausted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Parcel{
		ID:             parcelEntity.ID,
		TrackingNumber: parcelEntity.TrackingNumber,
		CustomerID:     parcelEntity.CustomerID,
		RouteID:        parcelEntity.RouteID,
		Status:         parcelEntity.Status.String(),
		WeightKg:       parcelEntity.WeightKg,
		Description:    parcelEntity.Description,
		CreatedAt:      parcelEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
