package ports

import (
	"context"

	"github.com/nexline/accounts-api/internal/core/domain"
)

type UserService interface {
	// ListAll returns a full snapshot of every user, unpaginated.
	ListAll(ctx context.Context) ([]domain.User, error)

	// CurrentUser returns the identity established by the auth middleware,
	// or domain.ErrUnauthenticated when the request never authenticated.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// UpdateProfile overwrites the four profile fields of the user addressed
	// by email. No partial-update semantics.
	UpdateProfile(ctx context.Context, email, phone, firstName, lastName string) (*domain.User, error)
}
