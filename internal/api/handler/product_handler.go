package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockshop/commerce-api/internal/api/metrics"
	"github.com/mockshop/commerce-api/internal/core/ports"
)

// ProductHandler handles catalog reads and the admin-only catalog writes.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products — full catalog snapshot, no pagination.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]any
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productCreateRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productCreateRequest
	if err := c.Bind(&req); err != nil {
		return malformedBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.products.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PATCH /products/:id (admin only, merge semantics).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      productUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productUpdateRequest
	if err := c.Bind(&req); err != nil {
		return malformedBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
