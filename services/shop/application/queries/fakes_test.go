package queries

import (
	"context"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/smokeshop/pkg/cache"
	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
	"github.com/ghuser/smokeshop/services/shop/domain/models"
)

// fakeProductRepo is an in-memory ProductRepository for handler tests.
type fakeProductRepo struct {
	products     []*models.Product
	err          error
	getByIDCalls int
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	f.getByIDCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shopdomain.ErrProductNotFound
}

func (f *fakeProductRepo) Add(_ context.Context, product *models.Product) error {
	f.products = append(f.products, product)
	return nil
}

// fakeOrderRepo is an in-memory OrderRepository for handler tests.
type fakeOrderRepo struct {
	orders []*models.Order
	err    error
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, shopdomain.ErrOrderNotFound
}

func (f *fakeOrderRepo) Add(_ context.Context, order *models.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

// fakeProductCache is an in-memory ProductCache. Set records every write so
// tests can assert the warm happened before Handle returned.
type fakeProductCache struct {
	entries map[int64]*pkgcache.CachedProduct
	sets    []*pkgcache.CachedProduct
	getErr  error
	setErr  error
}

func (f *fakeProductCache) Get(_ context.Context, id int64) (*pkgcache.CachedProduct, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.entries[id]; ok {
		return p, nil
	}
	return nil, redis.Nil
}

func (f *fakeProductCache) Set(_ context.Context, product *pkgcache.CachedProduct) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, product)
	return nil
}
