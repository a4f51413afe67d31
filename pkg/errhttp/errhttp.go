// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ghuser/smokeshop/pkg/httpx"
	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors default to 500 Internal Server Error with a generic
// body; the full error is logged, never echoed to the client, since
// persistence failures carry connection strings and driver detail.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		msg = http.StatusText(status)
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, shopdomain.ErrProductNotFound),
		errors.Is(err, shopdomain.ErrOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, shopdomain.ErrInvalidProductName),
		errors.Is(err, shopdomain.ErrInvalidPrice),
		errors.Is(err, shopdomain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
