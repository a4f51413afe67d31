// Package queries contains the read-side use cases, one request/handler pair
// per operation. Handlers are stateless, constructor-injected, and registered
// on the mediator in the composition root.
package queries

import (
	"context"
	"fmt"

	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/mapping"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
)

// GetAllProductsQuery requests every product in the catalog.
type GetAllProductsQuery struct{}

// Kind identifies this request type on the mediator.
func (GetAllProductsQuery) Kind() string { return "shop.products.get_all" }

// GetAllProductsHandler serves GetAllProductsQuery from the product store.
type GetAllProductsHandler struct {
	products repositories.ProductRepository
}

// NewGetAllProductsHandler returns a handler backed by the given repository.
func NewGetAllProductsHandler(products repositories.ProductRepository) *GetAllProductsHandler {
	return &GetAllProductsHandler{products: products}
}

// Handle lists all products and maps each to its DTO. An empty catalog
// yields an empty list, never an error.
func (h *GetAllProductsHandler) Handle(ctx context.Context, _ GetAllProductsQuery) ([]dtos.ProductDto, error) {
	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return mapping.ProductsToDtos(products), nil
}
