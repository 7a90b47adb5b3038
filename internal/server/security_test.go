package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/metrics"
)

var guardEpoch = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(ip, path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":4321"
	return req
}

func TestRequireAPIKey(t *testing.T) {
	apiKey := "secret-key"
	h := RequireAPIKey(apiKey, NewClientGuard(nil, clock.NewSimulated(guardEpoch)))(okHandler())

	tests := []struct {
		name       string
		key        string
		path       string
		wantStatus int
	}{
		{"valid key", apiKey, "/api/v1/challenge", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/challenge", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/dashboard", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"metrics is public", "", "/metrics", http.StatusOK},
		{"version is public", "", "/version", http.StatusOK},
		{"swagger is public", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAPIKey_CountsFailuresPerWindow(t *testing.T) {
	clk := clock.NewSimulated(guardEpoch)
	guard := NewClientGuard(nil, clk)
	h := RequireAPIKey("key", guard)(okHandler())
	before := testutil.ToFloat64(metrics.RejectedRequests.WithLabelValues(RejectReasonUnauthorized))

	for i := 0; i < FailedAuthAlertCount; i++ {
		h.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.9", "/api/v1/dashboard"))
	}

	assert.Equal(t, FailedAuthAlertCount+1, guard.FailedAuth("10.0.0.9"))
	assert.Equal(t, 1, guard.FailedAuth("10.0.0.10"))
	assert.Equal(t, float64(FailedAuthAlertCount),
		testutil.ToFloat64(metrics.RejectedRequests.WithLabelValues(RejectReasonUnauthorized))-before)

	clk.Advance(DetectorWindow + time.Second)
	assert.Equal(t, 1, guard.FailedAuth("10.0.0.9"), "a new window starts from zero")
}

func TestRateLimit(t *testing.T) {
	clk := clock.NewSimulated(guardEpoch)
	h := RateLimit(NewClientGuard(nil, clk))(okHandler())

	for i := 0; i < RequestLimitPerWindow; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.100", "/api/v1/activity/tap"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("192.168.1.100", "/api/v1/activity/tap"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("192.168.1.101", "/api/v1/activity/tap"))
	assert.Equal(t, http.StatusOK, rec.Code, "limit is per IP")

	clk.Advance(DetectorWindow + time.Second)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("192.168.1.100", "/api/v1/activity/tap"))
	assert.Equal(t, http.StatusOK, rec.Code, "limit resets with the window")
}

func TestClientGuard_ClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "203.0.113.5:1234", "", nil, "203.0.113.5"},
		{"untrusted forwarded ignored", "203.0.113.5:1234", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy uses last hop", "10.0.0.1:80", "198.51.100.1, 198.51.100.2", []string{"10.0.0.1"}, "198.51.100.2"},
		{"trusted proxy no header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewClientGuard(tt.trusted, clock.NewSimulated(guardEpoch))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, guard.ClientIP(req))
		})
	}
}

func TestLimitBody(t *testing.T) {
	h := LimitBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}
