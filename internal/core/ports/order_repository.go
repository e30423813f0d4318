package ports

import (
	"context"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// ListByUser returns the orders owned by userID in insertion order
	// (oldest first).
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
