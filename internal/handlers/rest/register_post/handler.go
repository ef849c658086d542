package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/account"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	role := entities.DefaultRole
	if registerDTO.Role != "" {
		role = entities.RoleType(registerDTO.Role)
	}

	accountEntity, err := h.service.Register(r.Context(), registerDTO.Username, registerDTO.Email, registerDTO.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidUsername),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrInvalidRole),
			errors.Is(err, account.ErrWeakPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrDuplicateUsername),
			errors.Is(err, account.ErrDuplicateEmail):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Account{
		ID:        accountEntity.ID,
		Username:  accountEntity.Username,
		Email:     accountEntity.Email,
		Role:      accountEntity.Role.String(),
		Active:    accountEntity.Active,
		CreatedAt: accountEntity.CreatedAt,
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
