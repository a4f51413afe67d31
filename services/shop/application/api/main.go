package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/smokeshop/pkg/app"
	pkgcache "github.com/ghuser/smokeshop/pkg/cache"
	"github.com/ghuser/smokeshop/pkg/mediator"
	"github.com/ghuser/smokeshop/services/shop/application/commands"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/handlers"
	"github.com/ghuser/smokeshop/services/shop/application/queries"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
	"github.com/ghuser/smokeshop/services/shop/infrastructure/persistence/postgres"
)

// ShopRoutes wires the shop bounded context and registers its endpoints on
// the provided chi router. Handler registration failures are configuration
// errors and abort startup.
func ShopRoutes(r chi.Router, a *app.Application) error {
	// Read-only repositories for the query side; no unit of work bound.
	products := postgres.NewProductRepository(a.Db, nil)
	orders := postgres.NewOrderRepository(a.Db, nil)

	// Each command invocation gets its own unit of work so concurrent
	// requests never stage into or commit each other's batch.
	newWriteScope := func() (repositories.ProductRepository, repositories.UnitOfWork) {
		uow := postgres.NewUnitOfWork(a.Db, a.EventBus)
		return postgres.NewProductRepository(a.Db, uow), uow
	}

	var productCache queries.ProductCache
	if a.Redis != nil {
		productCache = pkgcache.NewProductCache(a.Redis)
	}

	med := mediator.New()
	registrations := []error{
		mediator.Register[queries.GetAllProductsQuery, []dtos.ProductDto](med, queries.NewGetAllProductsHandler(products)),
		mediator.Register[queries.GetProductByIDQuery, dtos.ProductDto](med, queries.NewGetProductByIDHandler(products, productCache)),
		mediator.Register[queries.GetAllOrdersQuery, []dtos.OrderDto](med, queries.NewGetAllOrdersHandler(orders)),
		mediator.Register[queries.GetOrderByIDQuery, dtos.OrderDto](med, queries.NewGetOrderByIDHandler(orders)),
		mediator.Register[commands.CreateProductCommand, int64](med, commands.NewCreateProductHandler(newWriteScope)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("shop routes: %w", err)
		}
	}

	r.Group(func(r chi.Router) {
		r.Route("/Products", func(r chi.Router) {
			r.Get("/", handlers.NewGetProductsHandler(med).Execute)
			r.Post("/", handlers.NewPostProductHandler(med).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(med).Execute)
		})
		r.Route("/Orders", func(r chi.Router) {
			r.Get("/", handlers.NewGetOrdersHandler(med).Execute)
			r.Get("/{id}", handlers.NewGetOrderHandler(med).Execute)
		})
	})
	return nil
}
