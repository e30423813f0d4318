package ports

import (
	"context"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// OrderService defines order use cases.
type OrderService interface {
	// Place resolves every item against the catalog, computes the total from
	// a snapshot of current prices, and records the order. The first
	// unresolved productId aborts the whole operation with
	// *domain.InvalidProductError; no partial order is recorded.
	Place(ctx context.Context, userID string, items []domain.OrderItem) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
