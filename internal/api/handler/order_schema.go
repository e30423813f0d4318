package handler

import "github.com/mockshop/commerce-api/internal/core/domain"

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty"       validate:"required,gt=0"`
}

type orderCreateRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r orderCreateRequest) toItems() []domain.OrderItem {
	items := make([]domain.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.OrderItem{ProductID: it.ProductID, Qty: it.Qty}
	}
	return items
}
