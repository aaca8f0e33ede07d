package middleware

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
)

// Recovery turns a handler panic into a generic 500 response so internal
// detail never reaches the caller.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", "path", r.URL.Path, "method", r.Method, "panic", rec)
				helpers.WriteError(w, http.StatusInternalServerError, "Unexpected server error.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
