package queries

import (
	"context"
	"fmt"

	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/mapping"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
)

// GetAllOrdersQuery requests every order with its product resolved.
type GetAllOrdersQuery struct{}

// Kind identifies this request type on the mediator.
func (GetAllOrdersQuery) Kind() string { return "shop.orders.get_all" }

// GetAllOrdersHandler serves GetAllOrdersQuery from the order store.
type GetAllOrdersHandler struct {
	orders repositories.OrderRepository
}

// NewGetAllOrdersHandler returns a handler backed by the given repository.
func NewGetAllOrdersHandler(orders repositories.OrderRepository) *GetAllOrdersHandler {
	return &GetAllOrdersHandler{orders: orders}
}

// Handle lists all orders and maps each to its DTO, including the
// denormalized product name. The repository guarantees the product is
// resolved in the same fetch.
func (h *GetAllOrdersHandler) Handle(ctx context.Context, _ GetAllOrdersQuery) ([]dtos.OrderDto, error) {
	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out, err := mapping.OrdersToDtos(orders)
	if err != nil {
		return nil, fmt.Errorf("map orders: %w", err)
	}
	return out, nil
}
