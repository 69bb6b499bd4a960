package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newSwaggerRouter(cfg config.SwaggerConfig, auth gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg, auth), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return router
}

func getDocs(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }

	t.Run("disabled answers 404", func(t *testing.T) {
		w := getDocs(newSwaggerRouter(config.SwaggerConfig{}, nil), "192.0.2.1:1234")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ERR_NOT_FOUND", gjson.Get(w.Body.String(), "error.code").String())
	})

	t.Run("enabled without restrictions", func(t *testing.T) {
		w := getDocs(newSwaggerRouter(config.SwaggerConfig{Enabled: true}, deny), "192.0.2.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "docs", w.Body.String())
	})

	t.Run("allow list", func(t *testing.T) {
		router := newSwaggerRouter(config.SwaggerConfig{
			Enabled:    true,
			AllowedIPs: []string{"10.0.0.0/8", "192.0.2.7", "not-an-ip"},
		}, nil)

		tests := []struct {
			remote string
			want   int
		}{
			{"10.1.2.3:5000", http.StatusOK},
			{"192.0.2.7:5000", http.StatusOK},
			{"192.0.2.8:5000", http.StatusForbidden},
			{"[::ffff:10.0.0.1]:5000", http.StatusOK},
			{"[2001:db8::1]:5000", http.StatusForbidden},
		}
		for _, tt := range tests {
			t.Run(tt.remote, func(t *testing.T) {
				assert.Equal(t, tt.want, getDocs(router, tt.remote).Code)
			})
		}
	})

	t.Run("invalid allow list locks everyone out", func(t *testing.T) {
		router := newSwaggerRouter(config.SwaggerConfig{Enabled: true, AllowedIPs: []string{"nope"}}, nil)
		w := getDocs(router, "192.0.2.1:1234")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ERR_FORBIDDEN", gjson.Get(w.Body.String(), "error.code").String())
	})

	t.Run("require auth runs the auth handler", func(t *testing.T) {
		router := newSwaggerRouter(config.SwaggerConfig{Enabled: true, RequireAuth: true}, deny)
		assert.Equal(t, http.StatusUnauthorized, getDocs(router, "192.0.2.1:1234").Code)

		allow := func(c *gin.Context) { c.Next() }
		router = newSwaggerRouter(config.SwaggerConfig{Enabled: true, RequireAuth: true}, allow)
		assert.Equal(t, http.StatusOK, getDocs(router, "192.0.2.1:1234").Code)
	})

	t.Run("allow list checked before auth", func(t *testing.T) {
		called := false
		auth := func(c *gin.Context) { called = true }
		router := newSwaggerRouter(config.SwaggerConfig{
			Enabled:     true,
			RequireAuth: true,
			AllowedIPs:  []string{"10.0.0.0/8"},
		}, auth)

		assert.Equal(t, http.StatusForbidden, getDocs(router, "192.0.2.1:1234").Code)
		assert.False(t, called)
	})
}

func TestAdminAuth_GuardsSwagger(t *testing.T) {
	auth := AdminAuth(JWTMiddlewareConfig{Validator: newTestJWTService()})
	router := newSwaggerRouter(config.SwaggerConfig{Enabled: true, RequireAuth: true}, auth)

	issued, err := newTestJWTService().IssueAdminToken("dicky", 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.Header.Set(AuthHeaderKey, "Bearer "+issued.Token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, getDocs(router, "192.0.2.1:1234").Code)
}
