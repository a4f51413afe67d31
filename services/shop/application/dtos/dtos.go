// Package dtos holds the flat, serialization-safe projections exposed over
// HTTP. DTOs are produced exclusively by the mapping package.
package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals serialize as JSON numbers (15.50), not strings ("15.50").
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductDto is the external projection of a Product.
type ProductDto struct {
	ID    int64           `json:"id"    example:"1"`
	Name  string          `json:"name"  example:"Marlboro Red"`
	Price decimal.Decimal `json:"price" example:"5.20"`
} // @name ProductDto

// OrderDto is the external projection of an Order. ProductName is
// denormalized at mapping time from the eagerly loaded product; it is not
// stored on the order row.
type OrderDto struct {
	ID          int64           `json:"id"          example:"1"`
	Quantity    int             `json:"quantity"    example:"2"`
	ProductID   int64           `json:"productId"   example:"1"`
	ProductName string          `json:"productName" example:"Marlboro Red"`
	TotalCost   decimal.Decimal `json:"totalCost"   example:"10.40"`
	OrderDate   time.Time       `json:"orderDate"   example:"2025-09-15T00:00:00Z"`
} // @name OrderDto
