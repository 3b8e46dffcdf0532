package ports

import (
	"context"

	"github.com/nexline/accounts-api/internal/core/domain"
)

// SignupInput carries the fields accepted by registration. Roles holds role
// names; names that do not resolve against the role table are skipped.
type SignupInput struct {
	FirstName   string
	LastName    string
	CompanyName string
	Email       string
	PhoneNumber string
	Password    string
	Roles       []string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
