package ports

import (
	"context"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// ProductPatch carries a partial update. Nil fields are left untouched on the
// target record (merge semantics, distinct from "apply default").
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	InStock     *bool
}

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	// List returns a full snapshot of the catalog in insertion order.
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	// Update merges the non-nil patch fields into the stored record.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
