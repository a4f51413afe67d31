package queries

import (
	"context"
	"fmt"

	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/mapping"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
)

// GetOrderByIDQuery requests a single order with its product resolved.
type GetOrderByIDQuery struct {
	ID int64
}

// Kind identifies this request type on the mediator.
func (GetOrderByIDQuery) Kind() string { return "shop.orders.get_by_id" }

// GetOrderByIDHandler serves GetOrderByIDQuery from the order store.
type GetOrderByIDHandler struct {
	orders repositories.OrderRepository
}

// NewGetOrderByIDHandler returns a handler backed by the given repository.
func NewGetOrderByIDHandler(orders repositories.OrderRepository) *GetOrderByIDHandler {
	return &GetOrderByIDHandler{orders: orders}
}

// Handle returns the order's DTO, or ErrOrderNotFound when no row matches.
func (h *GetOrderByIDHandler) Handle(ctx context.Context, q GetOrderByIDQuery) (dtos.OrderDto, error) {
	order, err := h.orders.GetByID(ctx, q.ID)
	if err != nil {
		return dtos.OrderDto{}, fmt.Errorf("get order: %w", err)
	}
	dto, err := mapping.OrderToDto(order)
	if err != nil {
		return dtos.OrderDto{}, fmt.Errorf("map order: %w", err)
	}
	return dto, nil
}
