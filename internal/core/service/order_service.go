package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/ports"
)

// OrderService computes order totals against the catalog and records orders
// per user.
type OrderService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	log      zerolog.Logger
}

func NewOrderService(products ports.ProductRepository, orders ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{products: products, orders: orders, log: log}
}

// Place resolves each item in submission order against the catalog. The first
// unknown productId aborts the whole operation; nothing is recorded. The
// total is the sum of price x qty over all items, rounded once at the end.
func (s *OrderService) Place(ctx context.Context, userID string, items []domain.OrderItem) (*domain.Order, error) {
	// Money arithmetic in decimal: summing float64 prices would drift below
	// the half-cent boundary before the final rounding.
	total := decimal.Zero
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, &domain.InvalidProductError{ProductID: item.ProductID}
		}
		price := decimal.NewFromFloat(product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	rounded, _ := total.Round(2).Float64()
	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     rounded,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Int("items", len(items)).
		Float64("total", order.Total).
		Msg("order placed")

	return order, nil
}

// ListForUser returns the caller's orders, oldest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
