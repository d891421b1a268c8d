package app

import (
	"context"
	"testing"
)

type fakeCarts struct {
	discarded []string
}

func (f *fakeCarts) Discard(ctx context.Context, sessionID string) error {
	f.discarded = append(f.discarded, sessionID)
	return nil
}

func TestStartAndActive(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(&fakeCarts{})

	s, err := mgr.Start(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected a session id")
	}
	if !mgr.Active(ctx, s.ID) {
		t.Fatal("expected session to be active")
	}
	if mgr.Active(ctx, "ghost") {
		t.Fatal("unknown session reported active")
	}
}

func TestStartRequiresEmail(t *testing.T) {
	mgr := NewManager(&fakeCarts{})

	if _, err := mgr.Start(context.Background(), "   "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEndDiscardsCart(t *testing.T) {
	ctx := context.Background()
	carts := &fakeCarts{}
	mgr := NewManager(carts)

	s, err := mgr.Start(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := mgr.End(ctx, s.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if mgr.Active(ctx, s.ID) {
		t.Fatal("expected session to be gone")
	}
	if len(carts.discarded) != 1 || carts.discarded[0] != s.ID {
		t.Fatalf("expected cart discard for %s, got %v", s.ID, carts.discarded)
	}
}

func TestEndUnknownSessionIsNoop(t *testing.T) {
	carts := &fakeCarts{}
	mgr := NewManager(carts)

	if err := mgr.End(context.Background(), "ghost"); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if len(carts.discarded) != 0 {
		t.Fatalf("expected no discard, got %v", carts.discarded)
	}
}
