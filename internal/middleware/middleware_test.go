package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stuti0916/SymMuse/internal/logger"
	"github.com/Stuti0916/SymMuse/pkg/supabase"
)

type stubVerifier struct {
	user *supabase.User
	err  error
	got  string
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (*supabase.User, error) {
	s.got = token
	return s.user, s.err
}

func newRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware...)
	return r
}

func get(r *gin.Engine, target string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID(logger.Nop()))
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		assert.Equal(t, seen, c.GetString("request_id"))
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := get(r, "/ping", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		w := get(r, "/ping", map[string]string{RequestIDHeader: "abc-123"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   *stubVerifier
		wantStatus int
		wantToken  string
	}{
		{"missing header", "", &stubVerifier{}, http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", &stubVerifier{}, http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", &stubVerifier{}, http.StatusUnauthorized, ""},
		{"rejected token", "Bearer bad", &stubVerifier{err: supabase.ErrUnauthorized}, http.StatusUnauthorized, "bad"},
		{"valid token", "Bearer good", &stubVerifier{user: &supabase.User{ID: "user-1", Email: "a@b.c"}}, http.StatusOK, "good"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(RequestID(logger.Nop()), Auth(tt.verifier))
			r.GET("/me", func(c *gin.Context) {
				assert.Equal(t, "user-1", c.GetString("user_id"))
				assert.Equal(t, "user-1", logger.UserIDFromContext(c.Request.Context()))
				c.Status(http.StatusOK)
			})

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := get(r, "/me", headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantToken, tt.verifier.got)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "urn:symmuse:error:unauthorized")
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	for _, production := range []bool{false, true} {
		r := newRouter(SecurityHeaders(production))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := get(r, "/ping", nil)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
		assert.Equal(t, production, w.Header().Get("Strict-Transport-Security") != "")
	}
}

func TestRateLimit(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, "test")
	defer limiter.Stop()
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	user := "user-1"
	r := newRouter(func(c *gin.Context) {
		c.Set("user_id", user)
		c.Next()
	}, RateLimit(limiter))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = get(r, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	now = now.Add(20 * time.Second)
	w = get(r, "/ping", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "40", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "urn:symmuse:error:rate_limit")

	// other users have their own budget
	user = "user-2"
	w = get(r, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// the window resets
	user = "user-1"
	now = now.Add(time.Minute)
	w = get(r, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := newRouter(m.Instrument())
	r.GET("/api/v1/analytics", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.AbortWithError(http.StatusInternalServerError, errors.New("boom")) })
	r.GET("/metrics", m.Handler())

	get(r, "/api/v1/analytics", nil)
	get(r, "/api/v1/analytics", nil)
	get(r, "/fail", nil)
	get(r, "/nope", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/analytics", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/fail", http.MethodGet, "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", http.MethodGet, "404")))

	w := get(r, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "symmuse_http_requests_total"))
	assert.True(t, strings.Contains(body, "symmuse_http_request_duration_seconds_bucket"))
}
