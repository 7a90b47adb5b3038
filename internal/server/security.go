package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/metrics"
)

// windowCounts holds per-IP counters for one detector window
type windowCounts struct {
	start      time.Time
	failedAuth map[string]int
	requests   map[string]int
}

func newWindowCounts(start time.Time) windowCounts {
	return windowCounts{start: start, failedAuth: map[string]int{}, requests: map[string]int{}}
}

// ClientGuard counts failed logins and requests per client IP in fixed windows.
// X-Forwarded-For is only honoured when the direct peer is a trusted proxy.
type ClientGuard struct {
	trustedProxies []string
	clock          clock.Clock

	mu     sync.Mutex
	window windowCounts
}

// NewClientGuard creates a guard whose first window starts now
func NewClientGuard(trustedProxies []string, clk clock.Clock) *ClientGuard {
	return &ClientGuard{
		trustedProxies: trustedProxies,
		clock:          clk,
		window:         newWindowCounts(clk.Now()),
	}
}

// rollLocked starts a new window once DetectorWindow has passed. Caller holds g.mu.
func (g *ClientGuard) rollLocked() {
	if now := g.clock.Now(); now.Sub(g.window.start) > DetectorWindow {
		g.window = newWindowCounts(now)
	}
}

// FailedAuth records a rejected API key and returns the count for ip in this window
func (g *ClientGuard) FailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollLocked()
	g.window.failedAuth[ip]++
	n := g.window.failedAuth[ip]
	if n >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n
}

// Allow records a request from ip and reports whether it is within RequestLimitPerWindow
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollLocked()
	g.window.requests[ip]++
	n := g.window.requests[ip]
	if n <= RequestLimitPerWindow {
		return true
	}
	if n%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// ClientIP resolves the caller's address. Behind a trusted proxy the last
// X-Forwarded-For hop is used, since that is the address the proxy saw.
func (g *ClientGuard) ClientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(g.trustedProxies, peer) {
		return peer
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequireAPIKey rejects non-public requests whose X-API-Key does not match apiKey
func RequireAPIKey(apiKey string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := guard.ClientIP(r)
			attempts := guard.FailedAuth(ip)
			metrics.RejectedRequests.WithLabelValues(RejectReasonUnauthorized).Inc()
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "",
				"attempts", attempts)

			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RateLimit answers 429 once a client exceeds RequestLimitPerWindow
func RateLimit(guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(guard.ClientIP(r)) {
				metrics.RejectedRequests.WithLabelValues(RejectReasonRateLimited).Inc()
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LimitBody caps request bodies at maxBytes
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeaders sets the static hardening headers on every response
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range securityHeaders {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
