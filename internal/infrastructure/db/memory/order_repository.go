package memory

import (
	"context"
	"sync"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// OrderRepository is the in-memory order ledger. Orders are append-only and
// never mutated after creation.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *o
	stored.Items = append([]domain.OrderItem(nil), o.Items...)
	r.orders = append(r.orders, &stored)
	return nil
}

func (r *OrderRepository) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID != userID {
			continue
		}
		clone := *o
		clone.Items = append([]domain.OrderItem(nil), o.Items...)
		out = append(out, &clone)
	}
	return out, nil
}
