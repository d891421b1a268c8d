package app

import (
	"context"

	"github.com/lotusnegra/storefront/internal/cart/domain"
)

type CartRepo interface {
	// Get returns the session's cart, creating an empty one on first use.
	// The returned cart is a copy; mutations go through the other methods.
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, item domain.LineItem) error
	SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	RemoveItem(ctx context.Context, sessionID, productID string) error
	Clear(ctx context.Context, sessionID string) error
	// Delete drops the cart and all staged quantities for the session.
	Delete(ctx context.Context, sessionID string) error

	SetPendingQuantity(ctx context.Context, sessionID, productID, raw string) error
	PendingQuantity(ctx context.Context, sessionID, productID string) (string, error)
}
