package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dicky/portfolio/internal/infrastructure/auth"
	"github.com/dicky/portfolio/internal/infrastructure/logger"
	"github.com/dicky/portfolio/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTSubjectKey = "jwt_subject"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenValidator validates admin bearer tokens
type TokenValidator interface {
	ValidateAdminToken(token string) (*auth.Claims, error)
}

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	Validator TokenValidator
	Logger    *zap.Logger
}

// AdminAuth requires a valid admin bearer token on every request
func AdminAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, log, auth.ErrInvalidToken, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, log, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if tokenString == "" {
			abortUnauthorized(c, log, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.Validator.ValidateAdminToken(tokenString)
		if err != nil {
			abortUnauthorized(c, log, err, "Token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTSubjectKey, claims.Subject)

		ctx := c.Request.Context()
		reqLogger := logger.FromContext(ctx).With(zap.String("admin", claims.Subject))
		c.Request = c.Request.WithContext(logger.WithContext(ctx, reqLogger))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, err error, message string) {
	log.Warn("Admin authentication failed",
		zap.Error(err),
		zap.String("reason", message),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)

	status := http.StatusUnauthorized
	code := dto.ErrCodeTokenInvalid
	msg := "Invalid token"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
		msg = "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		msg = "Token is not yet valid"
	case errors.Is(err, auth.ErrNotAdmin):
		status = http.StatusForbidden
		code = dto.ErrCodeForbidden
		msg = "Admin access required"
	}

	c.Header("WWW-Authenticate", `Bearer realm="admin"`)
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, msg, GetRequestID(c)))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTSubject returns the admin subject of the current request, or ""
func GetJWTSubject(c *gin.Context) string {
	return c.GetString(JWTSubjectKey)
}
