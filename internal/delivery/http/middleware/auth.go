package middleware

import (
	"context"
	"net/http"
	"strings"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type contextKey string

const subjectKey contextKey = "subject"

// SubjectFromContext returns the authenticated token subject, if present.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	return s, ok
}

// RequireAdmin returns a wrapper that validates the Bearer token and sets
// the token subject in the request context. If the token is missing or
// invalid, it responds with 401 and does not call next.
func RequireAdmin(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteError(w, http.StatusUnauthorized, "Authorization required.")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteError(w, http.StatusUnauthorized, "Authorization required.")
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteError(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), subjectKey, subject))
			next(w, r)
		}
	}
}
