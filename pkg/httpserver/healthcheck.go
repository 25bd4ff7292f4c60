package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/coffeeshops/pkg/logger"
)

// HealthCheckHandler returns a HTTP handler for liveness and readiness probes.
//
//   - Liveness: with no dependency checks it returns 200 OK with body "ALIVE".
//   - Readiness: every check runs with the request context; if all succeed it
//     returns 200 "READY", otherwise 503 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err), logger.Component("healthcheck"))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
