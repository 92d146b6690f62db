package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe-rental-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 60, 60*24*7, 30)
	mw := NewAuthMiddleware(tokens)

	var seenUserID string
	protected := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid Token", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken("user-1", "staff@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", seenUserID)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Refresh Token Rejected", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken("user-1", "staff@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
