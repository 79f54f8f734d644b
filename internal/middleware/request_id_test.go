package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"service-desk-bot/pkg/log"
)

func newEngine(t *testing.T, seen *string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(New(log.NewNop()).RequestID())
	r.GET("/ping", func(c *gin.Context) {
		*seen, _ = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("Generates When Missing", func(t *testing.T) {
		var seen string
		r := newEngine(t, &seen)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("expected generated uuid in context, got %q", seen)
		}
		if got := w.Header().Get(RequestIDHeader); got != seen {
			t.Errorf("expected header %q, got %q", seen, got)
		}
	})

	t.Run("Keeps Incoming Header", func(t *testing.T) {
		var seen string
		r := newEngine(t, &seen)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if seen != "abc-123" || w.Header().Get(RequestIDHeader) != "abc-123" {
			t.Errorf("expected incoming id to be kept, got context=%q header=%q", seen, w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("Replaces Oversized Header", func(t *testing.T) {
		var seen string
		r := newEngine(t, &seen)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		r.ServeHTTP(httptest.NewRecorder(), req)

		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("expected oversized id to be replaced, got %q", seen)
		}
	})
}
