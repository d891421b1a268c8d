package memory

import (
	"context"
	"sync"

	"github.com/lotusnegra/storefront/internal/cart/domain"
)

// CartRepo keeps every session's cart in process memory. Carts are created
// on first use and dropped with their session. Reads hand out copies, so a
// caller never shares a slice with the store and a snapshot taken before a
// mutation is unaffected by it.
type CartRepo struct {
	mu      sync.Mutex
	carts   map[string]*domain.Cart
	pending map[string]map[string]string
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts:   make(map[string]*domain.Cart),
		pending: make(map[string]map[string]string),
	}
}

// cart returns the live cart for the session, creating it if needed.
// Callers must hold mu.
func (r *CartRepo) cart(sessionID string) *domain.Cart {
	c, ok := r.carts[sessionID]
	if !ok {
		c = &domain.Cart{SessionID: sessionID}
		r.carts[sessionID] = c
	}
	return c
}

func (r *CartRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.cart(sessionID)
	return domain.Cart{SessionID: c.SessionID, Items: c.Snapshot()}, nil
}

func (r *CartRepo) AddItem(ctx context.Context, sessionID string, item domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart(sessionID).Add(item)
	return nil
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart(sessionID).SetQuantity(productID, quantity)
	return nil
}

func (r *CartRepo) RemoveItem(ctx context.Context, sessionID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart(sessionID).Remove(productID)
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart(sessionID).Items = nil
	return nil
}

func (r *CartRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	delete(r.pending, sessionID)
	return nil
}

func (r *CartRepo) SetPendingQuantity(ctx context.Context, sessionID, productID, raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.pending[sessionID]
	if !ok {
		m = make(map[string]string)
		r.pending[sessionID] = m
	}
	m[productID] = raw
	return nil
}

// PendingQuantity returns the staged input for the product, defaulting to
// "1" when nothing has been typed yet.
func (r *CartRepo) PendingQuantity(ctx context.Context, sessionID, productID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if raw, ok := r.pending[sessionID][productID]; ok {
		return raw, nil
	}
	return "1", nil
}
