// Package middleware provides HTTP middleware for Chi router.
// Middleware components handle cross-cutting concerns like logging,
// panic recovery, rate limiting, and request tracing.
//
// Chi Middleware Philosophy:
//   - Uses standard net/http handlers
//   - Composable middleware chain
//   - Context-based request scoping
//   - Compatible with any net/http middleware
package middleware

import (
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/WillieIlus/printy/internal/application/port"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for the request ID.
	RequestIDKey ContextKey = "request_id"

	// RequestIDHeader is the header name for request IDs.
	RequestIDHeader = "X-Request-ID"
)

// GetRequestID extracts the request ID from the context.
//
// Parameters:
//   - ctx: the request context
//
// Returns:
//   - string: the request ID, or empty string if not found
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestID generates a unique request ID for each request.
// The ID is added to the response headers and request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if request already has an ID (e.g., from a gateway)
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger returns a middleware that logs HTTP requests.
// It logs request method, path, status, latency, and client IP.
//
// Parameters:
//   - logger: The logger to use
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Logger(logger port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			latency := time.Since(start)
			requestID := GetRequestID(r.Context())

			logger.Info("HTTP Request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.statusCode,
				"latency_ms", latency.Milliseconds(),
				"client_ip", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

// Write marks the response as written.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.written = true
	return rw.ResponseWriter.Write(b)
}

// Recoverer recovers from panics and logs the error.
// It returns a 500 Internal Server Error response.
//
// Parameters:
//   - logger: The logger to use
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Recoverer(logger port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						"request_id", GetRequestID(r.Context()),
						"panic", rec,
						"stack", string(debug.Stack()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"An internal error occurred"}}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiterConfig contains rate limiter configuration.
type RateLimiterConfig struct {
	// RequestsPerSecond is the sustained request rate allowed per client.
	RequestsPerSecond rate.Limit

	// Burst is the maximum burst size allowed per client.
	Burst int

	// CleanupInterval is how often idle client limiters are evicted.
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig returns sensible rate limiting defaults.
//
// Returns:
//   - RateLimiterConfig: the default configuration
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 50,
		Burst:             100,
		CleanupInterval:   10 * time.Minute,
	}
}

// clientLimiter tracks a per-client limiter and its last use.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP using a token bucket.
//
// Parameters:
//   - config: the rate limiter configuration
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func RateLimiter(config RateLimiterConfig) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	// Periodically evict limiters for clients that went quiet.
	go func() {
		for {
			time.Sleep(config.CleanupInterval)
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > config.CleanupInterval {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			mu.Lock()
			client, exists := clients[ip]
			if !exists {
				client = &clientLimiter{
					limiter: rate.NewLimiter(config.RequestsPerSecond, config.Burst),
				}
				clients[ip] = client
			}
			client.lastSeen = time.Now()
			mu.Unlock()

			if !client.limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"error":{"code":"RATE_LIMITED","message":"Too many requests"}}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeaders adds security-related HTTP headers to responses.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// APIVersion adds the API version header to responses.
//
// Parameters:
//   - version: the version string to advertise
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func APIVersion(version string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-API-Version", version)
			next.ServeHTTP(w, r)
		})
	}
}

// ContentTypeJSON enforces a JSON content type on mutating requests.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				w.Write([]byte(`{"success":false,"error":{"code":"UNSUPPORTED_MEDIA_TYPE","message":"Content-Type must be application/json"}}`))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// Timeout cancels the request context after the given duration.
//
// Parameters:
//   - timeout: the per-request deadline
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RealIP extracts the real client IP from proxy headers and rewrites
// RemoteAddr so downstream middleware (rate limiting, logging) sees it.
func RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
			// The first entry is the originating client.
			if i := strings.Index(ip, ","); i >= 0 {
				ip = ip[:i]
			}
			r.RemoteAddr = strings.TrimSpace(ip)
		} else if ip := r.Header.Get("X-Real-IP"); ip != "" {
			r.RemoteAddr = ip
		}

		next.ServeHTTP(w, r)
	})
}
