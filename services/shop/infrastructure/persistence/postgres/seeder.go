package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/smokeshop/pkg/database"
	"github.com/ghuser/smokeshop/services/shop/domain/models"
	"github.com/ghuser/smokeshop/services/shop/infrastructure/persistence/postgres/db"
)

// SeedDemoData populates the catalog with demo products and a few orders
// built through the Order factory. No-op when products already exist, so
// it is safe to run on every startup.
func SeedDemoData(ctx context.Context, database *database.Database) error {
	q := db.New(database.DB())
	count, err := q.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	uow := NewUnitOfWork(database, nil)
	products := NewProductRepository(database, uow)
	orders := NewOrderRepository(database, uow)

	var catalog []*models.Product
	for _, row := range []struct {
		name  string
		price string
	}{
		{"Marlboro Red", "5.20"},
		{"Camel Blue", "5.00"},
		{"Golden Virginia 30g", "6.10"},
		{"L&M Blue", "4.80"},
		{"IQOS Heets Amber", "4.50"},
	} {
		p, err := models.NewProduct(row.name, decimal.RequireFromString(row.price))
		if err != nil {
			return fmt.Errorf("seed: build product %q: %w", row.name, err)
		}
		if err := products.Add(ctx, p); err != nil {
			return fmt.Errorf("seed: stage product %q: %w", row.name, err)
		}
		catalog = append(catalog, p)
	}

	// Commit products first so the orders below reference generated ids.
	if err := uow.SaveChanges(ctx); err != nil {
		return fmt.Errorf("seed: save products: %w", err)
	}

	for _, row := range []struct {
		product  *models.Product
		quantity int
		date     time.Time
	}{
		{catalog[0], 2, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)},
		{catalog[2], 1, time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)},
		{catalog[4], 5, time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)},
		{catalog[0], 1, time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)},
	} {
		o, err := models.NewOrder(row.product, row.quantity, row.date)
		if err != nil {
			return fmt.Errorf("seed: build order: %w", err)
		}
		if err := orders.Add(ctx, o); err != nil {
			return fmt.Errorf("seed: stage order: %w", err)
		}
	}

	if err := uow.SaveChanges(ctx); err != nil {
		return fmt.Errorf("seed: save orders: %w", err)
	}
	return nil
}
