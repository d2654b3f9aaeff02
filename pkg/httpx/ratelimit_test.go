package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/teamgatehq/teamgate/pkg/httpx"
)

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")

		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")

		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestSubjectKeyExtractor(t *testing.T) {
	t.Run("extracts subject from context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(httpx.WithSubject(req.Context(), "user-123"))

		require.Equal(t, "user-123", httpx.SubjectKeyExtractor(req))
	})

	t.Run("empty without subject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Empty(t, httpx.SubjectKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	req = req.WithContext(httpx.WithSubject(req.Context(), "user-123"))

	extractor := httpx.CompositeKeyExtractor(":", httpx.SubjectKeyExtractor, httpx.IPKeyExtractor)
	require.Equal(t, "user-123:192.168.1.1", extractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}

	handler := httpx.RateLimitByIP(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 allowed, third rejected
	require.Equal(t, http.StatusOK, do("10.0.0.1:1000"))
	require.Equal(t, http.StatusOK, do("10.0.0.1:1000"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1000"))

	// A different key has its own bucket
	require.Equal(t, http.StatusOK, do("10.0.0.2:1000"))
}

func TestRateLimitHeaders(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}

	handler := httpx.RateLimitByIP(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.3:1000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := httpx.RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}

	t.Run("returns defaults without env", func(t *testing.T) {
		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("TESTNONE", defaults))
	})

	t.Run("overrides from env", func(t *testing.T) {
		os.Setenv("RATELIMIT_TESTSET_REQUESTS", "50")
		os.Setenv("RATELIMIT_TESTSET_WINDOW_SEC", "30")
		os.Setenv("RATELIMIT_TESTSET_BURST", "10")
		defer func() {
			os.Unsetenv("RATELIMIT_TESTSET_REQUESTS")
			os.Unsetenv("RATELIMIT_TESTSET_WINDOW_SEC")
			os.Unsetenv("RATELIMIT_TESTSET_BURST")
		}()

		got := httpx.ParseRateLimitFromEnv("TESTSET", defaults)
		require.Equal(t, 50, got.RequestsPerWindow)
		require.Equal(t, 30*time.Second, got.Window)
		require.Equal(t, 10, got.Burst)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		os.Setenv("RATELIMIT_TESTBAD_REQUESTS", "not-a-number")
		defer os.Unsetenv("RATELIMIT_TESTBAD_REQUESTS")

		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("TESTBAD", defaults))
	})
}
