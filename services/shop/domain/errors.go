package domain

import "errors"

// Sentinel errors for the shop domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidProductName indicates the product name violates domain constraints.
	ErrInvalidProductName = errors.New("invalid product name")

	// ErrInvalidPrice indicates a negative product price.
	ErrInvalidPrice = errors.New("invalid product price")

	// ErrInvalidQuantity indicates a non-positive order quantity.
	ErrInvalidQuantity = errors.New("invalid order quantity")

	// ErrMissingProduct indicates an order was created without an existing product,
	// or an order row was loaded without its product resolved.
	ErrMissingProduct = errors.New("order product missing")
)
