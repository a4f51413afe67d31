// Package commands contains the write-side use cases. Each command either
// fully commits — the returned entity carries a store-generated id — or the
// caller observes a propagated failure and no row was written.
package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/smokeshop/services/shop/application/mapping"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
)

// NewWriteScope returns a fresh staging repository bound to a fresh unit of
// work. One scope serves one command invocation: concurrent requests must
// never stage into or commit each other's batch, so scopes are opened per
// Handle call and discarded after the commit.
type NewWriteScope func() (repositories.ProductRepository, repositories.UnitOfWork)

// CreateProductCommand stages and commits a new product.
type CreateProductCommand struct {
	Name  string
	Price decimal.Decimal
}

// Kind identifies this request type on the mediator.
func (CreateProductCommand) Kind() string { return "shop.products.create" }

// CreateProductHandler validates input, stages the product on a
// per-invocation write scope and commits through its unit of work.
type CreateProductHandler struct {
	newScope NewWriteScope
}

// NewCreateProductHandler returns a handler that opens a write scope from
// newScope for every invocation.
func NewCreateProductHandler(newScope NewWriteScope) *CreateProductHandler {
	return &CreateProductHandler{newScope: newScope}
}

// Handle maps the command to a validated entity, stages it on a fresh scope
// and commits. Returns the store-generated product id. Persistence failures
// propagate untouched; there is no retry.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
	product, err := mapping.NewProductFromInput(cmd.Name, cmd.Price)
	if err != nil {
		return 0, err
	}

	products, uow := h.newScope()

	if err := products.Add(ctx, product); err != nil {
		return 0, fmt.Errorf("stage product: %w", err)
	}

	if err := uow.SaveChanges(ctx); err != nil {
		return 0, fmt.Errorf("save product: %w", err)
	}

	return product.ID, nil
}
