package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imslabs/ims-api/internal/api/shared"
	"github.com/imslabs/ims-api/internal/config"
	"github.com/imslabs/ims-api/internal/service/auth"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-key-that-is-long-enough-for-hmac",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)
	return svc
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWTService(t)
	middleware := NewAuthMiddleware(jwtService)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(httptest.NewRequest(http.MethodGet, "/", nil).Context(), userID)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var gotOK bool
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthenticate_Rejections(t *testing.T) {
	jwtService := newTestJWTService(t)
	middleware := NewAuthMiddleware(jwtService)

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	refreshToken, err := jwtService.GenerateRefreshToken(ctx, uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantBody   string
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantBody:   "Authorization header required",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantBody:   "Invalid authorization format",
		},
		{
			name:       "malformed header",
			authHeader: "Bearer",
			wantBody:   "Invalid authorization format",
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantBody:   "Invalid token",
		},
		{
			name:       "refresh token rejected on protected routes",
			authHeader: "Bearer " + refreshToken,
			wantBody:   "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler should not be reached")
			}))

			r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(r)
	assert.False(t, ok)
}

func TestTraceMiddleware(t *testing.T) {
	var traceID string
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, traceID, 32)
}
