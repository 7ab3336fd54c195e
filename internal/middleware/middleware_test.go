package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tsukasa1111/BurgerLendar/config"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, template string, a ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any)                  {}
func (mockLogger) Infof(ctx context.Context, template string, a ...any)  {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, template string, a ...any)  {}
func (mockLogger) Error(ctx context.Context, arg ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, template string, a ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, template string, a ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                 {}
func (mockLogger) Panicf(ctx context.Context, template string, a ...any) {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, template string, a ...any) {}

func newTestRouter(t *testing.T) (*gin.Engine, Middleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mw := New(mockLogger{}, &config.Config{})
	return gin.New(), mw
}

func TestIdentity(t *testing.T) {
	r, mw := newTestRouter(t)
	r.GET("/x", mw.Identity(), func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sc.UserID)
	})

	t.Run("resolves header into scope", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(UserIDHeader, "u1")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "u1" {
			t.Errorf("expected scope user u1, got %q", w.Body.String())
		}
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	r, mw := newTestRouter(t)
	r.GET("/x", mw.RequestID(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("assigns an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		r.ServeHTTP(w, req)

		if w.Header().Get(RequestIDHeader) == "" {
			t.Error("expected a generated request id on the response")
		}
	})

	t.Run("echoes caller-supplied id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "req-42" {
			t.Errorf("expected req-42 echoed back, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	r, mw := newTestRouter(t)
	// 60/min → burst of 6 immediate requests per client
	r.GET("/x", mw.RateLimit(60), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("throttles a single client after burst", func(t *testing.T) {
		var last int
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(UserIDHeader, "heavy")
			r.ServeHTTP(w, req)
			last = w.Code
		}
		if last != http.StatusTooManyRequests {
			t.Errorf("expected 429 after exhausting burst, got %d", last)
		}
	})

	t.Run("another client is unaffected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(UserIDHeader, "light")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200 for a fresh client, got %d", w.Code)
		}
	})
}
