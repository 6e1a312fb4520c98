package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmazurov/fuelcard-backend/internal/auth"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("a-secret", "r-secret", "fuelcard-backend",
		15*time.Minute, time.Hour)
}

func TestAuth_MissingHeader(t *testing.T) {
	am := NewAuthMiddleware(testTokenManager())
	next, called := okHandler()

	rec := httptest.NewRecorder()
	am.Auth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	tm := testTokenManager()
	am := NewAuthMiddleware(tm)
	next, called := okHandler()

	_, refresh, _, err := tm.GeneratePair("42", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	am.Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuth_ValidTokenStoresClaims(t *testing.T) {
	tm := testTokenManager()
	am := NewAuthMiddleware(tm)

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		require.True(t, ok)
		gotID = claims.ClientID
	})

	access, _, _, err := tm.GeneratePair("42", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	am.Auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "42", gotID)
}

func TestRequireAdmin(t *testing.T) {
	tm := testTokenManager()
	am := NewAuthMiddleware(tm)

	for _, tt := range []struct {
		name  string
		admin bool
		want  int
	}{
		{"admin passes", true, http.StatusOK},
		{"non-admin forbidden", false, http.StatusForbidden},
	} {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := okHandler()
			access, _, _, err := tm.GeneratePair("42", tt.admin)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+access)
			rec := httptest.NewRecorder()
			am.Auth(RequireAdmin(next)).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
