package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lotusnegra/storefront/internal/session/domain"
)

var ErrInvalidInput = errors.New("invalid input")

// CartLifecycle is the slice of the cart store the session manager drives:
// a cart belongs to exactly one session and must be discarded with it.
type CartLifecycle interface {
	Discard(ctx context.Context, sessionID string) error
}

type Manager struct {
	carts CartLifecycle

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewManager(carts CartLifecycle) *Manager {
	return &Manager{
		carts:    carts,
		sessions: make(map[string]domain.Session),
	}
}

// Start opens a session for a signed-in user.
func (m *Manager) Start(ctx context.Context, email string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Session{}, ErrInvalidInput
	}

	s := domain.Session{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

// End closes the session and discards its cart. Ending a session that does
// not exist is a no-op.
func (m *Manager) End(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return m.carts.Discard(ctx, id)
}

// Active reports whether id belongs to a live session.
func (m *Manager) Active(ctx context.Context, id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sessions[id]
	return ok
}
