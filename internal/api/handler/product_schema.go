package handler

import "github.com/mockshop/commerce-api/internal/core/ports"

type productCreateRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=120"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	InStock     *bool   `json:"inStock"`
}

// toInput applies the declared defaults for omitted optional fields:
// description "" and inStock true.
func (r productCreateRequest) toInput() ports.CreateProductInput {
	in := ports.CreateProductInput{
		Name:        r.Name,
		Description: "",
		Price:       r.Price,
		InStock:     true,
	}
	if r.Description != nil {
		in.Description = *r.Description
	}
	if r.InStock != nil {
		in.InStock = *r.InStock
	}
	return in
}

// productUpdateRequest mirrors productCreateRequest with every field
// optional. Nil means "leave the stored value untouched", which is different
// from the create defaults.
type productUpdateRequest struct {
	Name        *string  `json:"name"        validate:"omitnil,min=2,max=120"`
	Description *string  `json:"description" validate:"omitnil,max=500"`
	Price       *float64 `json:"price"       validate:"omitnil,gt=0"`
	InStock     *bool    `json:"inStock"`
}

func (r productUpdateRequest) toPatch() ports.ProductPatch {
	return ports.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		InStock:     r.InStock,
	}
}
