package ping_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"

	"dispatch/internal/dto"
	"dispatch/pkg/logger"
)

// Handler answers liveness probes; unlike the healthcheck it stays green
// during shutdown.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{log: log.With()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	res := dto.PingResponse{Message: pointer.To("pong")}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
