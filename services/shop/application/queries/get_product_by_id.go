package queries

import (
	"context"
	"fmt"
	"time"

	pkgcache "github.com/ghuser/smokeshop/pkg/cache"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/mapping"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
)

// cacheWarmTimeout caps how long a read request waits on a cache write.
const cacheWarmTimeout = 200 * time.Millisecond

// ProductCache is the read-through cache used by GetProductByIDHandler.
// *pkgcache.ProductCache satisfies it.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*pkgcache.CachedProduct, error)
	Set(ctx context.Context, product *pkgcache.CachedProduct) error
}

// GetProductByIDQuery requests a single product.
type GetProductByIDQuery struct {
	ID int64
}

// Kind identifies this request type on the mediator.
func (GetProductByIDQuery) Kind() string { return "shop.products.get_by_id" }

// GetProductByIDHandler serves GetProductByIDQuery using a read-through
// cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Warm the cache with the Postgres result, bounded by a short timeout
//     so a slow Redis cannot hold the request.
//
// Products are immutable in this API, so a cache hit is always current.
type GetProductByIDHandler struct {
	products repositories.ProductRepository
	cache    ProductCache
}

// NewGetProductByIDHandler returns a handler backed by the given repository
// and cache. cache may be nil; reads then always hit Postgres.
func NewGetProductByIDHandler(products repositories.ProductRepository, cache ProductCache) *GetProductByIDHandler {
	return &GetProductByIDHandler{products: products, cache: cache}
}

// Handle returns the product's DTO, or ErrProductNotFound when no row matches.
func (h *GetProductByIDHandler) Handle(ctx context.Context, q GetProductByIDQuery) (dtos.ProductDto, error) {
	if h.cache != nil {
		// redis.Nil is a miss; any other cache failure also falls through
		// to Postgres rather than failing the read.
		if cached, err := h.cache.Get(ctx, q.ID); err == nil {
			return dtos.ProductDto{
				ID:    cached.ID,
				Name:  cached.Name,
				Price: cached.Price,
			}, nil
		}
	}

	product, err := h.products.GetByID(ctx, q.ID)
	if err != nil {
		return dtos.ProductDto{}, fmt.Errorf("get product: %w", err)
	}

	if h.cache != nil {
		warmCtx, cancel := context.WithTimeout(ctx, cacheWarmTimeout)
		// A failed warm only costs the next read a Postgres round trip.
		_ = h.cache.Set(warmCtx, &pkgcache.CachedProduct{
			ID:    product.ID,
			Name:  product.Name.String(),
			Price: product.Price,
		})
		cancel()
	}

	return mapping.ProductToDto(product), nil
}
