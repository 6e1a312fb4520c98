package middleware

import (
	"log/slog"
	"net/http"

	"github.com/kmazurov/fuelcard-backend/internal/api/httpx"
)

// Recover turns handler panics into a 500 instead of killing the
// connection; the request id ties the log line to the failed call.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"err", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", w.Header().Get("X-Request-Id"))
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
