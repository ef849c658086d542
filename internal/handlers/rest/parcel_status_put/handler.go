package parcel_status_put

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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.ParcelStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntity, err := h.service.UpdateStatus(r.Context(), caller, id, entities.ParcelStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, parcel.ErrPrematureDelivery):
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
