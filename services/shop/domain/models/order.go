package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
)

// Order records a purchase of a single product. TotalCost is derived at
// creation time and frozen: a later price change on the product never
// recomputes it. Every order constructed through NewOrder satisfies
// TotalCost == Quantity × Product.Price-at-creation.
type Order struct {
	ID        int64
	Quantity  int
	ProductID int64
	Product   *Product
	TotalCost decimal.Decimal
	OrderDate time.Time
}

// NewOrder constructs a valid Order for an existing product.
// product must be non-nil and quantity positive; a zero orderDate defaults
// to the current UTC instant.
func NewOrder(product *Product, quantity int, orderDate time.Time) (*Order, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: order requires an existing product", shopdomain.ErrMissingProduct)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", shopdomain.ErrInvalidQuantity, quantity)
	}
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}
	return &Order{
		Quantity:  quantity,
		ProductID: product.ID,
		Product:   product,
		TotalCost: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		OrderDate: orderDate,
	}, nil
}
