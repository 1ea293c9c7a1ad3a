package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillieIlus/printy/internal/application/port"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, captured)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "generated request ID should be a UUID")
	assert.Equal(t, captured, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPropagatesExisting(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "gateway-id-123")

	rec := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rec, req)

	assert.Equal(t, "gateway-id-123", captured)
	assert.Equal(t, "gateway-id-123", rec.Header().Get(RequestIDHeader))
}

func TestRecovererConvertsPanicTo500(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recoverer(port.NopLogger{})(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	limited := RateLimiter(RateLimiterConfig{
		RequestsPerSecond: 1,
		Burst:             2,
		CleanupInterval:   time.Minute,
	})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiterIsPerClient(t *testing.T) {
	limited := RateLimiter(RateLimiterConfig{
		RequestsPerSecond: 1,
		Burst:             1,
		CleanupInterval:   time.Minute,
	})(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.2:1234"

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// A different client has its own bucket.
	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecureHeaders(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestContentTypeJSON(t *testing.T) {
	t.Run("rejects non-JSON posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "text/xml")

		rec := httptest.NewRecorder()
		ContentTypeJSON(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("allows JSON posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		rec := httptest.NewRecorder()
		ContentTypeJSON(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ignores GET requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ContentTypeJSON(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRealIP(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.RemoteAddr
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	RealIP(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", captured)
}

func TestAPIVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	APIVersion("1.2.3")(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "1.2.3", rec.Header().Get("X-API-Version"))
}
