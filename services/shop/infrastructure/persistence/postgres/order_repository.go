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

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
// Every read joins the products table so the returned order always carries a
// fully populated Product — the mapping layer depends on it.
type OrderRepository struct {
	db  *database.Database
	uow *UnitOfWork
}

// NewOrderRepository returns an OrderRepository backed by the given
// connection pool and unit of work. uow may be nil for read-only use.
func NewOrderRepository(database *database.Database, uow *UnitOfWork) *OrderRepository {
	return &OrderRepository{db: database, uow: uow}
}

// GetAll retrieves every order with its product resolved, ordered by id.
func (r *OrderRepository) GetAll(ctx context.Context) ([]*models.Order, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListOrdersWithProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	orders := make([]*models.Order, len(rows))
	for i, row := range rows {
		orders[i] = &models.Order{
			ID:        row.ID,
			Quantity:  int(row.Quantity),
			ProductID: row.ProductID,
			TotalCost: row.TotalCost,
			OrderDate: row.OrderDate,
			Product: &models.Product{
				ID:    row.ProductID,
				Name:  models.ProductName(row.ProductName),
				Price: row.ProductPrice,
			},
		}
	}
	return orders, nil
}

// GetByID retrieves an order with its product resolved.
// Returns ErrOrderNotFound if no row matches.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	q := db.New(r.db.DB())
	row, err := q.GetOrderWithProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shopdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return &models.Order{
		ID:        row.ID,
		Quantity:  int(row.Quantity),
		ProductID: row.ProductID,
		TotalCost: row.TotalCost,
		OrderDate: row.OrderDate,
		Product: &models.Product{
			ID:    row.ProductID,
			Name:  models.ProductName(row.ProductName),
			Price: row.ProductPrice,
		},
	}, nil
}

// Add stages order for the next SaveChanges commit.
func (r *OrderRepository) Add(_ context.Context, order *models.Order) error {
	if r.uow == nil {
		return fmt.Errorf("order repository: read-only, no unit of work bound")
	}
	r.uow.stageOrder(order)
	return nil
}
