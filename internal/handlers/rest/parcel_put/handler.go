package parcel_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	// Parcel attribute edits are a staff capability; drivers only move status.
	if !caller.IsStaff() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.ParcelUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModify := entities.ParcelModify{
		ID:          &id,
		CustomerID:  updateDTO.CustomerID,
		RouteID:     updateDTO.RouteID,
		WeightKg:    updateDTO.WeightKg,
		Description: updateDTO.Description,
	}

	parcelEntity, err := h.service.UpdateParcelFields(r.Context(), parcelModify)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidCustomerID),
			errors.Is(err, parcel.ErrInvalidRouteID),
			errors.Is(err, parcel.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrParcelFinalized):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, parcel.ErrRouteNotFound):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTO := dto.Parcel{
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
