package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	subject string
	err     error
}

func (s stubVerifier) Verify(token string) (string, error) {
	return s.subject, s.err
}

func TestRequireAdmin(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		called := false
		handler := RequireAdmin(stubVerifier{})(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/events", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		handler := RequireAdmin(stubVerifier{})(func(w http.ResponseWriter, r *http.Request) {})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", nil)
		req.Header.Set("Authorization", "Basic abc")
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		handler := RequireAdmin(stubVerifier{err: errors.New("bad token")})(func(w http.ResponseWriter, r *http.Request) {})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", nil)
		req.Header.Set("Authorization", "Bearer bad")
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token sets subject", func(t *testing.T) {
		var gotSubject string
		handler := RequireAdmin(stubVerifier{subject: "ops-1"})(func(w http.ResponseWriter, r *http.Request) {
			gotSubject, _ = SubjectFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", nil)
		req.Header.Set("Authorization", "Bearer good")
		handler(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "ops-1", gotSubject)
	})
}
