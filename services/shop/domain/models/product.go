package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
)

// Product is a catalog item. The ID is assigned by the store when the
// staged insert commits; it is zero until then and immutable afterwards.
type Product struct {
	ID    int64
	Name  ProductName
	Price decimal.Decimal
}

// NewProduct constructs a valid Product with no ID. Price must not be
// negative; name constraints are enforced by NewProductName.
// Returned errors wrap the domain sentinels so callers can classify them
// with errors.Is.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	productName, err := NewProductName(name)
	if err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative, got %s", shopdomain.ErrInvalidPrice, price)
	}
	return &Product{
		Name:  productName,
		Price: price,
	}, nil
}
