package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/common/observability"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Instrument wraps a route handler with request ID assignment, span
// creation, structured logging, and metrics recording.
func Instrument(route string, log logger.Logger, obs *observability.Observability, tracing *observability.Tracing, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)

		ctx, span := tracing.StartSpan(r.Context(), route)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(ctx))

		duration := time.Since(start)
		status := strconv.Itoa(rec.status)

		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(duration.Seconds())
		obs.RecordRequestProcessed(ctx, route, status)
		obs.RecordRequestDuration(ctx, duration, route)

		log.Info("request served", map[string]interface{}{
			"requestId":  requestID,
			"route":      route,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"durationMs": duration.Milliseconds(),
		})
	}
}
