package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for JWT operations. Token issuance lives
// in the identity system; this subsystem only validates access tokens and
// issues short-lived tokens in tests.
type TokenService interface {
	// GenerateToken creates a signed JWT with a subject, roles and TTL.
	GenerateToken(subject string, roles []string, secret string, ttl time.Duration) (string, error)

	// ValidateToken parses and validates a JWT string.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
