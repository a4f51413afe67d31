// Package mapping converts between domain entities and transfer objects with
// one explicit function per pair. No reflection, no mapping configuration:
// adding a field means touching the conversion by hand.
package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
	"github.com/ghuser/smokeshop/services/shop/domain/models"
)

// ProductToDto projects a Product onto its external shape.
func ProductToDto(p *models.Product) dtos.ProductDto {
	return dtos.ProductDto{
		ID:    p.ID,
		Name:  p.Name.String(),
		Price: p.Price,
	}
}

// ProductsToDtos maps a slice of products. Always returns a non-nil slice so
// an empty catalog serializes as [] rather than null.
func ProductsToDtos(products []*models.Product) []dtos.ProductDto {
	out := make([]dtos.ProductDto, len(products))
	for i, p := range products {
		out[i] = ProductToDto(p)
	}
	return out
}

// OrderToDto projects an Order onto its external shape, denormalizing the
// product name. The order's product must have been eagerly resolved by the
// repository; a nil product is a contract violation, not a user error.
func OrderToDto(o *models.Order) (dtos.OrderDto, error) {
	if o.Product == nil {
		return dtos.OrderDto{}, fmt.Errorf("%w: order %d loaded without its product", shopdomain.ErrMissingProduct, o.ID)
	}
	return dtos.OrderDto{
		ID:          o.ID,
		Quantity:    o.Quantity,
		ProductID:   o.ProductID,
		ProductName: o.Product.Name.String(),
		TotalCost:   o.TotalCost,
		OrderDate:   o.OrderDate,
	}, nil
}

// OrdersToDtos maps a slice of orders, failing on the first order whose
// product was not resolved.
func OrdersToDtos(orders []*models.Order) ([]dtos.OrderDto, error) {
	out := make([]dtos.OrderDto, len(orders))
	for i, o := range orders {
		dto, err := OrderToDto(o)
		if err != nil {
			return nil, err
		}
		out[i] = dto
	}
	return out, nil
}

// NewProductFromInput is the inbound mapping for product creation: it copies
// name and price into a validated entity and leaves the ID for the store.
func NewProductFromInput(name string, price decimal.Decimal) (*models.Product, error) {
	return models.NewProduct(name, price)
}
