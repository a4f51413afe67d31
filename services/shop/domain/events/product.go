package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicProductCreated is the Watermill topic published when a Product is created.
const TopicProductCreated = "product.created"

// ProductCreatedEvent is published after a new Product commits.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
// The worker uses it to warm the Redis product cache.
type ProductCreatedEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`  // Schema version; increment on breaking changes
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	OccurredAt time.Time       `json:"occurred_at"`
}
