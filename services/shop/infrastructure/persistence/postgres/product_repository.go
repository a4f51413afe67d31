package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/smokeshop/pkg/database"
	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
	"github.com/ghuser/smokeshop/services/shop/domain/models"
	"github.com/ghuser/smokeshop/services/shop/infrastructure/persistence/postgres/db"
)

// ProductRepository implements repositories.ProductRepository against
// PostgreSQL. Writes are staged on the bound UnitOfWork and only hit the
// database when SaveChanges commits.
type ProductRepository struct {
	db  *database.Database
	uow *UnitOfWork
}

// NewProductRepository returns a ProductRepository backed by the given
// connection pool and unit of work. uow may be nil for read-only use;
// Add then fails instead of staging into a batch nobody commits.
func NewProductRepository(database *database.Database, uow *UnitOfWork) *ProductRepository {
	return &ProductRepository{db: database, uow: uow}
}

// GetAll retrieves every product ordered by id.
func (r *ProductRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = rowToProduct(row)
	}
	return products, nil
}

// GetByID retrieves a product by id. Returns ErrProductNotFound if no row matches.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	q := db.New(r.db.DB())
	row, err := q.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shopdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

// Add stages product for the next SaveChanges commit. The id stays zero
// until the commit assigns it.
func (r *ProductRepository) Add(_ context.Context, product *models.Product) error {
	if r.uow == nil {
		return fmt.Errorf("product repository: read-only, no unit of work bound")
	}
	r.uow.stageProduct(product)
	return nil
}

// rowToProduct maps a db.Product to a domain models.Product.
func rowToProduct(row db.Product) *models.Product {
	return &models.Product{
		ID:    row.ID,
		Name:  models.ProductName(row.Name),
		Price: row.Price,
	}
}
