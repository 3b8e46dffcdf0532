package ports

import (
	"time"

	"github.com/nexline/accounts-api/internal/core/domain"
)

// TokenService issues and validates the signed bearer tokens that carry a
// user's identity between requests.
type TokenService interface {
	// Issue signs a token whose subject is the user's email, valid for the
	// configured lifetime from now.
	Issue(user *domain.User) (string, error)

	// ExtractSubject verifies the signature and returns the subject claim
	// without enforcing expiry. Malformed or unsigned tokens return
	// domain.ErrInvalidToken.
	ExtractSubject(token string) (string, error)

	// IsValid reports whether the token's signature verifies, its expiry has
	// not passed, and its subject matches the given user.
	IsValid(token string, user *domain.User) bool

	// Lifetime is the fixed validity duration applied to issued tokens.
	Lifetime() time.Duration
}
