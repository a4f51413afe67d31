package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/smokeshop/services/shop/domain/events"
)

func TestProductCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.ProductCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		ProductID:  7,
		Name:       "Marlboro Red",
		Price:      decimal.RequireFromString("5.20"),
		OccurredAt: time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.ProductCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.ProductID != original.ProductID {
		t.Errorf("ProductID: got %d, want %d", decoded.ProductID, original.ProductID)
	}
	if decoded.Name != original.Name {
		t.Errorf("Name: got %q, want %q", decoded.Name, original.Name)
	}
	if !decoded.Price.Equal(original.Price) {
		t.Errorf("Price: got %s, want %s", decoded.Price, original.Price)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestProductCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  1,
		Name:       "Camel Blue",
		Price:      decimal.RequireFromString("5.00"),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "product_id", "name", "price", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicProductCreated_Value(t *testing.T) {
	if events.TopicProductCreated != "product.created" {
		t.Errorf("expected %q, got %q", "product.created", events.TopicProductCreated)
	}
}
