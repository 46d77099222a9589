package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imslabs/ims-api/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false})
	defer rl.Stop()

	handler := rl.Limit(okHandler())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_ExhaustsBucket(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, Rate: 0.001, Capacity: 3})
	defer rl.Stop()

	handler := rl.Limit(okHandler())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
		r.RemoteAddr = "10.0.0.1:54321"
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code, "request %d within capacity", i)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	r.RemoteAddr = "10.0.0.1:54321"
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiter_PerClientBuckets(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, Rate: 0.001, Capacity: 1})
	defer rl.Stop()

	handler := rl.Limit(okHandler())

	// Distinct client IPs get distinct buckets.
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
		r.RemoteAddr = fmt.Sprintf("10.0.0.%d:1000", i)
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// The first client is now exhausted while a new one is not.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	r.RemoteAddr = "10.0.0.0:1000"
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/medicines", nil)
	r.RemoteAddr = "10.0.0.99:1000"
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
