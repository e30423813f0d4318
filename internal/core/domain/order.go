package domain

import "time"

// InvalidProductError reports the first order item whose productId did not
// resolve to a catalog entry. The whole order is rejected; nothing is recorded.
type InvalidProductError struct {
	ProductID string
}

func (e *InvalidProductError) Error() string {
	return "invalid productId: " + e.ProductID
}

// OrderItem is a single line of an order: a product reference and a positive
// quantity.
type OrderItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Order is an immutable record of a purchase. Total is derived from the
// catalog prices at placement time, rounded to 2 decimal places.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}
