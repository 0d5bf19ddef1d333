package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"team-planner-backend/internal/realtime"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func healthRouter(h *HealthHandler) *gin.Engine {
	router := newTestRouter(uuid.Nil)
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
	return router
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all services up", func(t *testing.T) {
		router := healthRouter(&HealthHandler{checks: map[string]healthCheck{"database": ok, "push": ok}})

		w := doJSON(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, map[string]string{"database": "healthy", "push": "healthy"}, response.Services)
	})

	t.Run("one service down", func(t *testing.T) {
		router := healthRouter(&HealthHandler{checks: map[string]healthCheck{"database": ok, "push": down}})

		w := doJSON(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "error: connection refused", response.Services["push"])
	})

	t.Run("readiness", func(t *testing.T) {
		router := healthRouter(&HealthHandler{checks: map[string]healthCheck{"database": down}})

		w := doJSON(router, http.MethodGet, "/health/ready", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"ready":false`)
		assert.Contains(t, w.Body.String(), "not ready: connection refused")
	})

	t.Run("liveness ignores dependencies", func(t *testing.T) {
		router := healthRouter(&HealthHandler{checks: map[string]healthCheck{"database": down}})

		w := doJSON(router, http.MethodGet, "/health/live", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alive":true`)
	})
}

func TestNewHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=nobody dbname=none sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	t.Run("checks database and push", func(t *testing.T) {
		handler := NewHealthHandler(db, realtime.NewRedisHub(client))

		w := doJSON(healthRouter(handler), http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Services["push"])
		assert.Contains(t, response.Services["database"], "error: ")
	})

	t.Run("no hub", func(t *testing.T) {
		handler := NewHealthHandler(db, nil)

		assert.Len(t, handler.checks, 1)
		assert.Contains(t, handler.checks, "database")
	})
}
