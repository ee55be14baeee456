// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dash/config"
	"dash/internal/domain/service"
	"dash/internal/errors"
)

// hmacMethods lists the signing algorithms the service accepts. Anything
// weaker than symmetric HMAC is refused at construction time.
var hmacMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte                 // Server-held signing key, from configuration.
	method    *jwt.SigningMethodHMAC // Declared signing algorithm.
	accessTTL time.Duration          // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a signing key; the key is never hardcoded.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := hmacMethods[cfg.JWT.Algorithm]
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %q", cfg.JWT.Algorithm)
	}

	ttl := cfg.JWT.AccessTokenTTL
	if ttl <= 0 {
		ttl = config.DefaultAccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.JWT.Secret),
		method:    method,
		accessTTL: ttl,
	}, nil
}

// Issue creates a signed access token for the given user using the configured TTL.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	return s.IssueWithTTL(userID, s.accessTTL)
}

// IssueWithTTL creates a signed access token with an explicit time-to-live.
// Expiry is always issued-at plus the TTL.
func (s *jwtService) IssueWithTTL(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),     // Subject (who the token is for)
		"iat": now.Unix(),          // Issued At
		"exp": now.Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(s.method, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string and returns its claims.
// All failure modes come back as errors, never panics, and with no leeway on expiry.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithLeeway(0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims format")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("subject claim missing from token")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim in token")
	}

	claims := &service.Claims{UserID: userID}
	if exp, expErr := mapClaims.GetExpirationTime(); expErr == nil {
		claims.ExpiresAt = exp
	}
	if iat, iatErr := mapClaims.GetIssuedAt(); iatErr == nil {
		claims.IssuedAt = iat
	}
	claims.Subject = subject

	return claims, nil
}

// AccessTokenDuration returns the configured token time-to-live.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
