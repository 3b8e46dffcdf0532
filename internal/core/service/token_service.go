package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nexline/accounts-api/internal/core/domain"
)

const defaultTokenTTL = 12 * time.Hour

// TokenService issues and validates HS256-signed JWTs. The signing key is a
// process-wide symmetric secret; token validity is purely signature + expiry,
// there is no server-side token state.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	if lifetime <= 0 {
		lifetime = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a token for the user with subject = email, issued now,
// expiring after the configured lifetime.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// ExtractSubject verifies the signature and returns the subject claim. Expiry
// is deliberately not enforced here; this is the first pass used to resolve
// the user before the full IsValid check.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

// IsValid reports whether the token's signature verifies, its expiry has not
// passed, and its subject matches the given user's email. Malformed tokens
// simply report false.
func (s *TokenService) IsValid(token string, user *domain.User) bool {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return false
	}
	return claims.Subject == user.Email
}

// Lifetime is the fixed validity duration applied to issued tokens.
func (s *TokenService) Lifetime() time.Duration {
	return s.lifetime
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}
