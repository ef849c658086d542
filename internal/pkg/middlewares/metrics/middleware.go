package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"dispatch/pkg/logger"
)

// Middleware records request duration/count metrics and writes one access
// log line per request.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			status := strconv.Itoa(rec.status)

			// The mux route template labels the metric; raw paths with ids
			// would explode label cardinality.
			routeLabel := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					routeLabel = template
				}
			}

			HTTPRequestDuration.WithLabelValues(r.Method, routeLabel, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, routeLabel, status).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", routeLabel),
				logger.NewField("status", status),
				logger.NewField("duration", elapsed.String()),
			).Info("HTTP request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
