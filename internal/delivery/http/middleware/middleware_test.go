package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"md-terceirizacao-api/internal/delivery/http/middleware"
	"md-terceirizacao-api/pkg/apperror"
	"md-terceirizacao-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.Log
	logger.Log = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { logger.Log = prev })
	return &buf
}

func TestErrorHandler(t *testing.T) {
	logs := captureLogs(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		c.Error(apperror.Validation("Preencha todos os campos.", []string{"nome"}))
	})
	r.GET("/delivery", func(c *gin.Context) {
		c.Error(apperror.Delivery("Erro ao enviar o email.", errors.New("dial tcp: secret-host:587 refused")))
	})
	r.GET("/unknown", func(c *gin.Context) {
		c.Error(errors.New("kaboom"))
	})

	t.Run("validation error is 400 with specific message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Preencha todos os campos."}`, w.Body.String())
	})

	t.Run("delivery error is logged but not echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/delivery", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro ao enviar o email."}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "secret-host")
		assert.Contains(t, logs.String(), "secret-host")
	})

	t.Run("unknown error maps to generic 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "kaboom")
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://anything.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("disabled config passes through", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("burst is enforced per client", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			RPS:     0.001,
			Burst:   2,
			KeyFunc: func(c *gin.Context) string { return c.GetHeader("X-Client") },
		}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		send := func(client string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Client", client)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			return w
		}

		assert.Equal(t, http.StatusOK, send("a").Code)
		assert.Equal(t, http.StatusOK, send("a").Code)

		w := send("a")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])

		assert.Equal(t, http.StatusOK, send("b").Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
