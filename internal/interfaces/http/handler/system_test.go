package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("portfolio", "1.2.3")
	c, w := newTestContext(http.MethodGet, "/system/info")

	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "portfolio", gjson.Get(body, "data.name").String())
	assert.Equal(t, "1.2.3", gjson.Get(body, "data.version").String())
	assert.NotEmpty(t, gjson.Get(body, "data.go_version").String())
	assert.NotEmpty(t, gjson.Get(body, "data.uptime").String())
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("portfolio", "dev")
	c, w := newTestContext(http.MethodGet, "/system/ping")

	h.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", gjson.Get(w.Body.String(), "data.message").String())
	_, err := time.Parse(time.RFC3339, gjson.Get(w.Body.String(), "data.timestamp").String())
	require.NoError(t, err)
}

func TestSystemHandler_Health(t *testing.T) {
	ok := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all checks pass", func(t *testing.T) {
		h := NewSystemHandler("portfolio", "dev").AddCheck("database", ok).AddCheck("cache", ok)
		c, w := newTestContext(http.MethodGet, "/health")

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Equal(t, "healthy", gjson.Get(body, "status").String())
		assert.Equal(t, "ok", gjson.Get(body, "checks.database").String())
		assert.Equal(t, "ok", gjson.Get(body, "checks.cache").String())
	})

	t.Run("one check fails", func(t *testing.T) {
		h := NewSystemHandler("portfolio", "dev").AddCheck("database", broken).AddCheck("cache", ok)
		c, w := newTestContext(http.MethodGet, "/health")

		h.Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := w.Body.String()
		assert.Equal(t, "unhealthy", gjson.Get(body, "status").String())
		assert.Equal(t, "error", gjson.Get(body, "checks.database").String())
		assert.Equal(t, "ok", gjson.Get(body, "checks.cache").String())
		assert.NotContains(t, body, "connection refused")
	})

	t.Run("no checks", func(t *testing.T) {
		h := NewSystemHandler("portfolio", "dev")
		c, w := newTestContext(http.MethodGet, "/health")

		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
