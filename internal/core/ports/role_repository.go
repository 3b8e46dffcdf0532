package ports

import (
	"context"

	"github.com/nexline/accounts-api/internal/core/domain"
)

// RoleRepository provides read access to the static role table.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
