package web

import (
	"errors"
	"net/http"

	catalogapp "github.com/lotusnegra/storefront/internal/catalog/app"
	sessionapp "github.com/lotusnegra/storefront/internal/session/app"
)

// Status maps service errors onto an HTTP status and a stable error code
// clients can branch on.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, sessionapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
