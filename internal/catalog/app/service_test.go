package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lotusnegra/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	products map[string]domain.Product
}

func (f fakeRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func TestGetProduct(t *testing.T) {
	svc := NewService(fakeRepo{products: map[string]domain.Product{
		"p1": {ID: "p1", Name: "Tee", Price: decimal.RequireFromString("69.99")},
	}})

	t.Run("empty id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "   ")
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "ghost")
		if err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("known id -> product", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if p.Name != "Tee" {
			t.Fatalf("expected Tee, got %q", p.Name)
		}
	})
}
