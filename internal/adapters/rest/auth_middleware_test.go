package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-service/internal/contextkeys"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	am := NewAuthMiddleware([]string{"token-a", "token-b"})

	var seenToken string
	handler := am.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenToken = contextkeys.AdminTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("MissingTokenRejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/listings", nil)

		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnknownTokenRejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/listings", nil)
		r.Header.Set("X-Admin-Token", "stranger")

		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidTokenPassedToContext", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/listings", nil)
		r.Header.Set("X-Admin-Token", "token-b")

		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token-b", seenToken)
	})
}
