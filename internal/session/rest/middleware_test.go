package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lotusnegra/storefront/internal/session/app"
)

type noopCarts struct{}

func (noopCarts) Discard(ctx context.Context, sessionID string) error { return nil }

func newTestRouter(mgr *app.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Middleware(mgr), func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestMiddleware(t *testing.T) {
	mgr := app.NewManager(noopCarts{})
	router := newTestRouter(mgr)

	t.Run("missing header -> 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown session -> 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderSessionID, "ghost")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("active session -> request bound to it", func(t *testing.T) {
		s, err := mgr.Start(context.Background(), "user@example.com")
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderSessionID, s.ID)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != s.ID {
			t.Fatalf("expected session id %q, got %q", s.ID, w.Body.String())
		}
	})
}
