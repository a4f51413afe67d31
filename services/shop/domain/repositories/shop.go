package repositories

import (
	"context"

	"github.com/ghuser/smokeshop/services/shop/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	// GetAll returns every product in storage order. An empty catalog yields
	// an empty slice, not an error.
	GetAll(ctx context.Context) ([]*models.Product, error)

	// GetByID returns the product with the given id, or ErrProductNotFound.
	GetByID(ctx context.Context, id int64) (*models.Product, error)

	// Add stages a new product for the next UnitOfWork commit. The product's
	// ID stays zero until SaveChanges assigns the store-generated value.
	Add(ctx context.Context, product *models.Product) error
}

// OrderRepository is the persistence interface for the Order aggregate.
// Both read operations resolve the associated Product in the same fetch;
// callers may read order.Product.Name without a second round trip.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]*models.Order, error)

	// GetByID returns the order with the given id, or ErrOrderNotFound.
	GetByID(ctx context.Context, id int64) (*models.Order, error)

	// Add stages a new order for the next UnitOfWork commit.
	Add(ctx context.Context, order *models.Order) error
}

// UnitOfWork commits all writes staged since the last commit in one atomic
// transaction. On success the store-generated identifiers become visible on
// the staged entities. On failure nothing is written and the staged batch is
// discarded; the caller observes the propagated error.
type UnitOfWork interface {
	SaveChanges(ctx context.Context) error
}
