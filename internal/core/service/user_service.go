package service

import (
	"context"
	"errors"
	"time"

	"github.com/nexline/accounts-api/internal/core/domain"
	"github.com/nexline/accounts-api/internal/core/ports"
)

// UserService implements profile reads and updates for authenticated users.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListAll returns a full snapshot of every user.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// CurrentUser returns the identity the auth middleware attached to the
// request context. On protected routes this is always present; a missing
// identity means the route was wired without the middleware.
func (s *UserService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, ok := domain.UserFromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// UpdateProfile overwrites the user's email, phone number and name fields
// unconditionally. A uniqueness violation at persist time (e.g. the new phone
// number already taken) surfaces as ErrUserExists.
func (s *UserService) UpdateProfile(ctx context.Context, email, phone, firstName, lastName string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}

	user.Email = email
	user.PhoneNumber = phone
	user.FirstName = firstName
	user.LastName = lastName
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}
