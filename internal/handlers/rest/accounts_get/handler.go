package accounts_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/middlewares/auth"
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
	if !caller.IsStaff() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	accountsPage, err := h.service.GetAccounts(r.Context(), entities.PageRequest{
		Number: page,
		Size:   size,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := make([]dto.Account, len(accountsPage.Items))
	for i, accountEntity := range accountsPage.Items {
		items[i] = dto.Account{
			ID:        accountEntity.ID,
			Username:  accountEntity.Username,
			Email:     accountEntity.Email,
			Role:      accountEntity.Role.String(),
			Active:    accountEntity.Active,
			CreatedAt: accountEntity.CreatedAt,
		}
	}

	response := dto.PageResponse[dto.Account]{
		Data:         items,
		PageNumber:   accountsPage.Number,
		PageSize:     accountsPage.Size,
		TotalRecords: accountsPage.TotalRecords,
		TotalPages:   accountsPage.TotalPages,
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
