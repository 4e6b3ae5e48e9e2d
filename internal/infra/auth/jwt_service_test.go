package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService()

	tokenString, err := svc.GenerateToken("user-123", []string{"customer"}, "secret", time.Minute)
	require.NoError(t, err)

	token, err := svc.ValidateToken(tokenString, "secret")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims["sub"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"customer"}, roles)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService()

	tokenString, err := svc.GenerateToken("user-123", nil, "secret", time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString, "not-the-secret")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService()

	tokenString, err := svc.GenerateToken("user-123", nil, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString, "secret")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}
