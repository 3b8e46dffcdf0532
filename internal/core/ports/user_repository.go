package ports

import (
	"context"

	"github.com/nexline/accounts-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// Create must surface the store's uniqueness constraints on email and phone
// number as domain.ErrUserExists; lookups return domain.ErrResourceNotFound
// when no user matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)

	// InTransaction runs fn inside a single store transaction. Operations
	// issued through the context passed to fn join that transaction, so a
	// check-then-insert sequence is atomic with respect to concurrent calls.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
