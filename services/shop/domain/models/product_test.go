package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid product has no ID until persisted", func(t *testing.T) {
		p, err := NewProduct("Marlboro Red", decimal.RequireFromString("5.20"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != 0 {
			t.Errorf("expected zero ID before commit, got %d", p.ID)
		}
		if p.Name.String() != "Marlboro Red" {
			t.Errorf("unexpected name: %q", p.Name)
		}
		if !p.Price.Equal(decimal.RequireFromString("5.20")) {
			t.Errorf("unexpected price: %s", p.Price)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		if _, err := NewProduct("Freebie", decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := NewProduct("Bad", decimal.RequireFromString("-0.01"))
		if !errors.Is(err, shopdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := NewProduct("", decimal.RequireFromString("1.00"))
		if !errors.Is(err, shopdomain.ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})
}

func TestNewProductName(t *testing.T) {
	t.Run("accepts name at max length", func(t *testing.T) {
		name := strings.Repeat("a", 150)
		got, err := NewProductName(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != name {
			t.Error("name not preserved")
		}
	})

	t.Run("rejects name over max length", func(t *testing.T) {
		_, err := NewProductName(strings.Repeat("a", 151))
		if !errors.Is(err, shopdomain.ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProductName("")
		if !errors.Is(err, shopdomain.ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})
}
