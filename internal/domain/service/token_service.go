package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: everything needed to verify one is inside the signed
// string itself, so nothing is persisted on issue.
type TokenService interface {
	// Issue creates a signed access token for the given user using the
	// configured time-to-live.
	Issue(userID uuid.UUID) (string, error)

	// IssueWithTTL creates a signed access token with an explicit time-to-live.
	IssueWithTTL(userID uuid.UUID, ttl time.Duration) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims. Validation applies no leeway: a token is rejected the
	// moment the verifying server's clock reaches its expiry.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token time-to-live.
	AccessTokenDuration() time.Duration
}
