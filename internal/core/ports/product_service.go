package ports

import (
	"context"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// CreateProductInput carries a fully-normalized product creation payload
// (defaults already applied by the transport layer).
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	InStock     bool
}

// ProductService defines catalog use cases. Create, Update, and Delete are
// admin-only; enforcement happens in the transport layer.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
