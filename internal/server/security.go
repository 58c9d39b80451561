package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kettlewell/stranded/internal/logger"
)

// activityMonitor keeps per-IP counters over a fixed window so the
// middleware can surface brute-force attempts and shed abusive clients.
// Counters reset together when the window rolls over.
type activityMonitor struct {
	mu          sync.Mutex
	failedAuth  map[string]int
	requests    map[string]int
	windowStart time.Time
}

func newActivityMonitor() *activityMonitor {
	return &activityMonitor{
		failedAuth:  make(map[string]int),
		requests:    make(map[string]int),
		windowStart: time.Now(),
	}
}

// noteFailedAuth counts a rejected API key for the given IP and logs an
// alert once the count reaches the threshold.
func (m *activityMonitor) noteFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.failedAuth[ip]++
	if m.failedAuth[ip] >= failedAuthAlertThreshold {
		slog.Warn("Repeated authentication failures", "ip", ip, "count", m.failedAuth[ip])
	}
}

// allowRequest counts a request for the given IP and reports whether it
// is still under the per-window budget.
func (m *activityMonitor) allowRequest(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.requests[ip]++
	if m.requests[ip] <= rateLimitMaxRequests {
		return true
	}
	if m.requests[ip]%100 == 0 { // keep the log volume bounded while shedding
		slog.Warn("Rate limit exceeded", "ip", ip, "requests_in_window", m.requests[ip])
	}
	return false
}

// rollWindow clears the counters once the window has elapsed.
// Caller must hold mu.
func (m *activityMonitor) rollWindow() {
	if time.Since(m.windowStart) > rateLimitWindow {
		m.failedAuth = make(map[string]int)
		m.requests = make(map[string]int)
		m.windowStart = time.Now()
	}
}

// apiKeyAuth rejects requests that do not carry the expected X-API-Key
// header. Paths under publicPathPrefixes pass through unauthenticated.
// The key comparison is constant-time.
func apiKeyAuth(apiKey string, trustedProxies []string, mon *activityMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range publicPathPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			provided := r.Header.Get(headerAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				mon.noteFailedAuth(ip)
				logger.FromContext(r.Context()).Warn("Authentication failed",
					"path", r.URL.Path,
					"ip", ip,
					"has_key", provided != "")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimit sheds requests from IPs that exceed the per-window budget.
func rateLimit(trustedProxies []string, mon *activityMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mon.allowRequest(clientIP(r, trustedProxies)) {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limitBodySize caps request bodies. Handlers see the cap as a read error
// from the body.
func limitBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// securityHeaders sets browser hardening headers on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the caller's address. X-Forwarded-For is honored only
// when the direct peer is a configured trusted proxy, and then the
// rightmost entry wins, since that is the address that reached the proxy.
func clientIP(r *http.Request, trustedProxies []string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != host {
			continue
		}
		if forwarded := r.Header.Get(headerForwardedFor); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			return strings.TrimSpace(parts[len(parts)-1])
		}
		break
	}

	return host
}
