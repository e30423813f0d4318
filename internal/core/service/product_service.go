package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/ports"
)

// ProductService implements catalog use cases on top of the product repository.
type ProductService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Create assigns a fresh id and creation timestamp and stores the product.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		InStock:     in.InStock,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// Update merges the provided fields into the stored record; omitted fields
// keep their prior value.
func (s *ProductService) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
