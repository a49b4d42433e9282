package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/voyago/voyago-api/internal/middleware"
)

func hitLogin(handler http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_BurstThenThrottle(t *testing.T) {
	// Effectively no refill during the test: only the burst is spendable.
	rl := middleware.NewRateLimiter(rate.Limit(0.001), 3)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hitLogin(handler, "10.0.0.1:5000"), "request %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hitLogin(handler, "10.0.0.1:5000"))
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(0.001), 1)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Exhaust one client's budget.
	assert.Equal(t, http.StatusOK, hitLogin(handler, "10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, hitLogin(handler, "10.0.0.1:5000"))

	// A different client is unaffected; a different port on the same host
	// shares the limiter.
	assert.Equal(t, http.StatusOK, hitLogin(handler, "10.0.0.2:5000"))
	assert.Equal(t, http.StatusTooManyRequests, hitLogin(handler, "10.0.0.1:6000"))
}
