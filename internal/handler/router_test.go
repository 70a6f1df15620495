//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"slices"
	"testing"

	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(t *testing.T, mode string) *gin.Engine {
	t.Helper()
	prev := gin.Mode()
	gin.SetMode(mode)
	t.Cleanup(func() { gin.SetMode(prev) })

	cfg := config.NewTestConfig()
	engine := handler.NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log),
		api.NewRoomHandler(nil, nil), api.NewReservationHandler(nil, nil))
	return engine
}

func hasRoute(engine *gin.Engine, method, path string) bool {
	return slices.ContainsFunc(engine.Routes(), func(r gin.RouteInfo) bool {
		return r.Method == method && r.Path == path
	})
}

func TestNewRouter(t *testing.T) {
	t.Run("registers the api routes", func(t *testing.T) {
		engine := newEngine(t, gin.TestMode)

		for _, want := range []struct{ method, path string }{
			{http.MethodGet, "/health"},
			{http.MethodGet, "/api/rooms"},
			{http.MethodGet, "/api/rooms/categories"},
			{http.MethodGet, "/api/rooms/available"},
			{http.MethodGet, "/api/rooms/:id"},
			{http.MethodPost, "/api/reservations"},
			{http.MethodGet, "/api/reservations"},
			{http.MethodGet, "/api/reservations/:id"},
			{http.MethodDelete, "/api/reservations/:id"},
		} {
			assert.True(t, hasRoute(engine, want.method, want.path), "%s %s", want.method, want.path)
		}
	})

	t.Run("serves swagger ui in debug mode", func(t *testing.T) {
		engine := newEngine(t, gin.DebugMode)

		assert.True(t, hasRoute(engine, http.MethodGet, "/swagger/*any"))
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/swagger/index.html", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("hides swagger ui outside debug mode", func(t *testing.T) {
		engine := newEngine(t, gin.ReleaseMode)

		assert.False(t, hasRoute(engine, http.MethodGet, "/swagger/*any"))
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/swagger/index.html", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
