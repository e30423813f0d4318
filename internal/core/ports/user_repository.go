package ports

import (
	"context"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// UserRepository defines the account directory persistence operations.
// Email lookups are case-insensitive; Create fails with domain.ErrEmailExists
// when the normalized email is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
