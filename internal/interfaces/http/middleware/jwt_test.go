package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dicky/portfolio/internal/infrastructure/auth"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const testSecret = "test-secret-key-at-least-32-chars"

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          testSecret,
		Issuer:          "test-issuer",
		TokenExpiration: 15 * time.Minute,
	})
}

func newAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(RequestID(), AdminAuth(JWTMiddlewareConfig{Validator: newTestJWTService()}))
	router.GET("/admin", func(c *gin.Context) {
		claims := GetJWTClaims(c)
		require.NotNil(t, claims)
		c.String(http.StatusOK, GetJWTSubject(c))
	})
	return router
}

func callAdmin(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authorization != "" {
		req.Header.Set(AuthHeaderKey, authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminAuth_ValidToken(t *testing.T) {
	issued, err := newTestJWTService().IssueAdminToken("dicky", 0)
	require.NoError(t, err)

	w := callAdmin(newAdminRouter(t), "Bearer "+issued.Token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dicky", w.Body.String())
}

func TestAdminAuth_Rejections(t *testing.T) {
	expired := func() string {
		claims := auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "test-issuer",
				Subject:   "dicky",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
			Role: auth.RoleAdmin,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}
	viewer := func() string {
		claims := auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "test-issuer",
				Subject:   "guest",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			Role: "viewer",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name          string
		authorization string
		status        int
		code          string
	}{
		{"missing header", "", http.StatusUnauthorized, "ERR_TOKEN_INVALID"},
		{"wrong scheme", "Basic Zm9vOmJhcg==", http.StatusUnauthorized, "ERR_TOKEN_INVALID"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "ERR_TOKEN_INVALID"},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, "ERR_TOKEN_INVALID"},
		{"expired", "Bearer " + expired(), http.StatusUnauthorized, "ERR_TOKEN_EXPIRED"},
		{"not admin", "Bearer " + viewer(), http.StatusForbidden, "ERR_FORBIDDEN"},
	}

	router := newAdminRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := callAdmin(router, tt.authorization)

			assert.Equal(t, tt.status, w.Code)
			body := w.Body.String()
			assert.False(t, gjson.Get(body, "success").Bool())
			assert.Equal(t, tt.code, gjson.Get(body, "error.code").String())
			assert.Equal(t, w.Header().Get(RequestIDHeader), gjson.Get(body, "error.request_id").String())
			assert.Equal(t, `Bearer realm="admin"`, w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestGetJWTClaims_NotFound(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, GetJWTClaims(c))
	assert.Empty(t, GetJWTSubject(c))
}
