package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ghuser/smokeshop/pkg/mediator"
	"github.com/ghuser/smokeshop/services/shop/application/commands"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/queries"
	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
	"github.com/ghuser/smokeshop/services/shop/domain/models"
	"github.com/ghuser/smokeshop/services/shop/domain/repositories"
)

type fakeProductRepo struct {
	products []*models.Product
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]*models.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
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

type fakeOrderRepo struct {
	orders []*models.Order
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]*models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*models.Order, error) {
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

// fakeUnitOfWork assigns ids at commit time, as the store would. The id
// counter is shared across commits so every scope hands out distinct ids.
type fakeUnitOfWork struct {
	products *fakeProductRepo
	nextID   *int64
}

func (f *fakeUnitOfWork) SaveChanges(_ context.Context) error {
	for _, p := range f.products.products {
		if p.ID == 0 {
			*f.nextID++
			p.ID = *f.nextID
		}
	}
	return nil
}

func mustProduct(t *testing.T, id int64, name string, price string) *models.Product {
	t.Helper()
	p, err := models.NewProduct(name, decimal.RequireFromString(price))
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	p.ID = id
	return p
}

// newTestRouter wires the full handler layer against in-memory stores,
// mounted the same way the API composes it.
func newTestRouter(t *testing.T, products *fakeProductRepo, orders *fakeOrderRepo) *chi.Mux {
	t.Helper()

	med := mediator.New()
	nextID := int64(100)
	newScope := func() (repositories.ProductRepository, repositories.UnitOfWork) {
		return products, &fakeUnitOfWork{products: products, nextID: &nextID}
	}

	checks := []error{
		mediator.Register[queries.GetAllProductsQuery, []dtos.ProductDto](med, queries.NewGetAllProductsHandler(products)),
		mediator.Register[queries.GetProductByIDQuery, dtos.ProductDto](med, queries.NewGetProductByIDHandler(products, nil)),
		mediator.Register[queries.GetAllOrdersQuery, []dtos.OrderDto](med, queries.NewGetAllOrdersHandler(orders)),
		mediator.Register[queries.GetOrderByIDQuery, dtos.OrderDto](med, queries.NewGetOrderByIDHandler(orders)),
		mediator.Register[commands.CreateProductCommand, int64](med, commands.NewCreateProductHandler(newScope)),
	}
	for _, err := range checks {
		if err != nil {
			t.Fatalf("register handler: %v", err)
		}
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/Products", func(r chi.Router) {
			r.Get("/", NewGetProductsHandler(med).Execute)
			r.Post("/", NewPostProductHandler(med).Execute)
			r.Get("/{id}", NewGetProductHandler(med).Execute)
		})
		r.Route("/Orders", func(r chi.Router) {
			r.Get("/", NewGetOrdersHandler(med).Execute)
			r.Get("/{id}", NewGetOrderHandler(med).Execute)
		})
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetProducts(t *testing.T) {
	t.Run("empty catalog returns empty array", func(t *testing.T) {
		router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodGet, "/api/Products", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("body = %q, want []", got)
		}
	})

	t.Run("returns all products", func(t *testing.T) {
		products := &fakeProductRepo{products: []*models.Product{
			mustProduct(t, 1, "Marlboro Red", "5.20"),
			mustProduct(t, 2, "Camel Blue", "4.80"),
		}}
		router := newTestRouter(t, products, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodGet, "/api/Products", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got []dtos.ProductDto
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Name != "Marlboro Red" || !got[0].Price.Equal(decimal.RequireFromString("5.20")) {
			t.Errorf("first product = %+v", got[0])
		}
	})
}

func TestGetProductByID(t *testing.T) {
	products := &fakeProductRepo{products: []*models.Product{
		mustProduct(t, 1, "Marlboro Red", "5.20"),
	}}
	router := newTestRouter(t, products, &fakeOrderRepo{})

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/Products/1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got dtos.ProductDto
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.ID != 1 || got.Name != "Marlboro Red" {
			t.Errorf("product = %+v", got)
		}
	})

	t.Run("missing id responds 404 with empty body", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/Products/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body = %q, want empty", rec.Body.String())
		}
	})

	t.Run("non-numeric id responds 400", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/Products/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestPostProduct(t *testing.T) {
	t.Run("creates product and returns id", func(t *testing.T) {
		products := &fakeProductRepo{}
		router := newTestRouter(t, products, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodPost, "/api/Products",
			`{"name":"Novo Produto Teste","price":15.50}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
		}
		var got dtos.ProductDto
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.ID <= 0 {
			t.Errorf("id = %d, want > 0", got.ID)
		}
		if got.Name != "Novo Produto Teste" {
			t.Errorf("name = %q", got.Name)
		}
		if !got.Price.Equal(decimal.RequireFromString("15.50")) {
			t.Errorf("price = %s, want 15.50", got.Price)
		}
		if loc := rec.Header().Get("Location"); loc != "/api/Products/101" {
			t.Errorf("Location = %q, want /api/Products/101", loc)
		}
	})

	t.Run("missing name responds 422", func(t *testing.T) {
		router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodPost, "/api/Products", `{"price":1.00}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("negative price responds 422", func(t *testing.T) {
		router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodPost, "/api/Products",
			`{"name":"Bad","price":-1}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("malformed json responds 400", func(t *testing.T) {
		router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodPost, "/api/Products", `{"name":`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestGetOrders(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{})

		rec := doRequest(t, router, http.MethodGet, "/api/Orders", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("body = %q, want []", got)
		}
	})

	t.Run("orders carry product name and total", func(t *testing.T) {
		product := mustProduct(t, 1, "Marlboro Red", "5.20")
		order, err := models.NewOrder(product, 2, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("NewOrder: %v", err)
		}
		order.ID = 1
		router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{orders: []*models.Order{order}})

		rec := doRequest(t, router, http.MethodGet, "/api/Orders", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got []dtos.OrderDto
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].ProductName != "Marlboro Red" {
			t.Errorf("productName = %q", got[0].ProductName)
		}
		if !got[0].TotalCost.Equal(decimal.RequireFromString("10.40")) {
			t.Errorf("totalCost = %s, want 10.40", got[0].TotalCost)
		}
	})
}

func TestGetOrderByID(t *testing.T) {
	product := mustProduct(t, 1, "Marlboro Red", "5.20")
	order, err := models.NewOrder(product, 3, time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	order.ID = 7
	router := newTestRouter(t, &fakeProductRepo{}, &fakeOrderRepo{orders: []*models.Order{order}})

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/Orders/7", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got dtos.OrderDto
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.ID != 7 || got.ProductID != 1 || got.Quantity != 3 {
			t.Errorf("order = %+v", got)
		}
	})

	t.Run("missing id responds 404 with empty body", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/Orders/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("body = %q, want empty", rec.Body.String())
		}
	})
}
