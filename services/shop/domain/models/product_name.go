package models

import (
	"fmt"

	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
)

// ProductName is a value object representing a valid product name.
// Encapsulates validation rules: 1 <= len(name) <= 150.
type ProductName string

const (
	minProductNameLength = 1
	maxProductNameLength = 150
)

// NewProductName constructs a valid ProductName or returns an error wrapping
// ErrInvalidProductName if constraints are violated.
func NewProductName(s string) (ProductName, error) {
	if len(s) < minProductNameLength {
		return "", fmt.Errorf("%w: name must not be empty", shopdomain.ErrInvalidProductName)
	}
	if len(s) > maxProductNameLength {
		return "", fmt.Errorf("%w: name must not exceed %d characters", shopdomain.ErrInvalidProductName, maxProductNameLength)
	}
	return ProductName(s), nil
}

// String returns the underlying string value.
func (n ProductName) String() string {
	return string(n)
}
