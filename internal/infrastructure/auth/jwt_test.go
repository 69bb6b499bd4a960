package auth

import (
	"testing"
	"time"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-that-is-long-enough-32",
		Issuer:          "portfolio-api",
		TokenExpiration: time.Hour,
	})
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestService()

	issued, err := svc.IssueAdminToken("dicky", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateAdminToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "dicky", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "portfolio-api", claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestService()
	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }

	issued, err := svc.IssueAdminToken("dicky", time.Minute)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAdminToken(issued.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issued, err := newTestService().IssueAdminToken("dicky", 0)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "another-secret-key-that-is-long-enough", Issuer: "portfolio-api"})
	_, err = other.ValidateAdminToken(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	svc := newTestService()
	issued, err := svc.IssueAdminToken("dicky", 0)
	require.NoError(t, err)

	svc.issuer = "someone-else"
	_, err = svc.ValidateAdminToken(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNonAdminRole(t *testing.T) {
	svc := newTestService()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "portfolio-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "viewer",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.ValidateAdminToken(token)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestService()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAdmin})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAdminToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := newTestService().ValidateAdminToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
