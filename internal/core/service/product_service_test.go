package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/ports"
	"github.com/mockshop/commerce-api/internal/infrastructure/db/memory"
)

func newProductService() *ProductService {
	return NewProductService(memory.NewProductRepository(), zerolog.Nop())
}

func TestProductService_CreateAssignsIDAndTimestamp(t *testing.T) {
	svc := newProductService()

	p, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Description: "A widget", Price: 9.99, InStock: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and createdAt, got %+v", p)
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Widget" || got.Price != 9.99 {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestProductService_UpdateMergesOnlyProvidedFields(t *testing.T) {
	svc := newProductService()

	p, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Widget", Description: "original", Price: 20.00, InStock: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newPrice := 9.99
	updated, err := svc.Update(context.Background(), p.ID, ports.ProductPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Price != 9.99 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.Name != "Widget" || updated.Description != "original" || !updated.InStock {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestProductService_ListSnapshotInsertionOrder(t *testing.T) {
	svc := newProductService()

	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: n, Price: 1, InStock: true}); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 products, got %d", len(list))
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Fatalf("position %d: expected %s, got %s", i, n, list[i].Name)
		}
	}
}

func TestProductService_DeleteAndNotFound(t *testing.T) {
	svc := newProductService()

	p, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget", Price: 1, InStock: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}

	var price float64 = 2
	if _, err := svc.Update(context.Background(), "missing", ports.ProductPatch{Price: &price}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound on update, got %v", err)
	}
}
