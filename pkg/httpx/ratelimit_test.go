package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/talentsift/talentsift/pkg/httpx"
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

func TestRateLimitMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("blocks after limit exhausted", func(t *testing.T) {
		config := httpx.RateLimitConfig{
			RequestsPerWindow: 3,
			Window:            time.Minute,
			Burst:             3,
		}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			rec := httptest.NewRecorder()

			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rec := httptest.NewRecorder()

		limited.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		config := httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		}
		limited := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler)

		req1 := httptest.NewRequest(http.MethodGet, "/", nil)
		req1.RemoteAddr = "192.168.1.1:12345"
		rec1 := httptest.NewRecorder()
		limited.ServeHTTP(rec1, req1)
		require.Equal(t, http.StatusOK, rec1.Code)

		rec1b := httptest.NewRecorder()
		limited.ServeHTTP(rec1b, req1)
		require.Equal(t, http.StatusTooManyRequests, rec1b.Code)

		req2 := httptest.NewRequest(http.MethodGet, "/", nil)
		req2.RemoteAddr = "192.168.1.2:12345"
		rec2 := httptest.NewRecorder()
		limited.ServeHTTP(rec2, req2)
		require.Equal(t, http.StatusOK, rec2.Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		config := httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		}
		limited := httpx.RateLimitMiddleware(config, func(r *http.Request) string {
			return ""
		})(okHandler)

		for n := 0; n < 3; n++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}

	t.Run("returns defaults when unset", func(t *testing.T) {
		require.Equal(t, def, httpx.ParseRateLimitFromEnv("TESTPREFIX", def))
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTPREFIX_REQUESTS", "42")
		t.Setenv("RATELIMIT_TESTPREFIX_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TESTPREFIX_BURST", "7")

		got := httpx.ParseRateLimitFromEnv("TESTPREFIX", def)
		require.Equal(t, 42, got.RequestsPerWindow)
		require.Equal(t, 30*time.Second, got.Window)
		require.Equal(t, 7, got.Burst)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTPREFIX_REQUESTS", "not-a-number")
		t.Setenv("RATELIMIT_TESTPREFIX_BURST", "-1")

		require.Equal(t, def, httpx.ParseRateLimitFromEnv("TESTPREFIX", def))
	})
}
