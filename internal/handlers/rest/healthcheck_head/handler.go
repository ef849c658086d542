package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler reports readiness: 204 while serving, 503 once shutdown has begun
// so load balancers stop routing here before connections are drained.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{isShuttingDown: isShuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusNoContent
	if h.isShuttingDown.Load() {
		status = http.StatusServiceUnavailable
	}
	w.WriteHeader(status)
}
