package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/smokeshop/pkg/database"
	"github.com/ghuser/smokeshop/pkg/events"
	domainevents "github.com/ghuser/smokeshop/services/shop/domain/events"
	"github.com/ghuser/smokeshop/services/shop/domain/models"
	"github.com/ghuser/smokeshop/services/shop/infrastructure/persistence/postgres/db"
)

// UnitOfWork collects writes staged by the repositories and commits them in
// one transaction. Store-generated ids are written back onto the staged
// entities before the commit returns; ProductCreatedEvents are published in
// the same transaction (outbox pattern).
//
// On failure the staged batch is discarded; nothing was written and the
// caller must re-create whatever it staged.
//
// One UnitOfWork serves one logical request (or one seeding pass). Sharing
// an instance across requests would let one caller drain and commit
// another's staged batch.
type UnitOfWork struct {
	db  *database.Database
	bus *events.EventBus // nil disables event publishing (e.g. in the seeder)

	mu       sync.Mutex
	products []*models.Product
	orders   []*models.Order
}

// NewUnitOfWork returns a UnitOfWork bound to the given connection pool and
// event bus.
func NewUnitOfWork(database *database.Database, bus *events.EventBus) *UnitOfWork {
	return &UnitOfWork{db: database, bus: bus}
}

func (u *UnitOfWork) stageProduct(p *models.Product) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.products = append(u.products, p)
}

func (u *UnitOfWork) stageOrder(o *models.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.orders = append(u.orders, o)
}

// SaveChanges commits everything staged since the last commit atomically.
// Products are inserted before orders so an order staged against a product
// from the same batch resolves its freshly generated foreign key.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	u.mu.Lock()
	products, orders := u.products, u.orders
	u.products, u.orders = nil, nil
	u.mu.Unlock()

	if len(products) == 0 && len(orders) == 0 {
		return nil
	}

	return u.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		for _, p := range products {
			id, err := q.InsertProduct(ctx, db.InsertProductParams{
				Name:  p.Name.String(),
				Price: p.Price,
			})
			if err != nil {
				return fmt.Errorf("insert product: %w", err)
			}
			p.ID = id

			if u.bus != nil {
				if err := u.publishProductCreated(tx, p); err != nil {
					return fmt.Errorf("publish product created: %w", err)
				}
			}
		}

		for _, o := range orders {
			if o.ProductID == 0 && o.Product != nil {
				o.ProductID = o.Product.ID
			}
			id, err := q.InsertOrder(ctx, db.InsertOrderParams{
				Quantity:  int32(o.Quantity),
				TotalCost: o.TotalCost,
				OrderDate: o.OrderDate,
				ProductID: o.ProductID,
			})
			if err != nil {
				return fmt.Errorf("insert order: %w", err)
			}
			o.ID = id
		}

		return nil
	})
}

func (u *UnitOfWork) publishProductCreated(tx *sql.Tx, p *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  p.ID,
		Name:       p.Name.String(),
		Price:      p.Price,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	pub, err := u.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return pub.Publish(domainevents.TopicProductCreated, msg)
}
