package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lotusnegra/storefront/internal/catalog/app"
	"github.com/lotusnegra/storefront/internal/catalog/domain"
)

// ProductRepo serves a fixed product list from memory. The list is copied at
// construction and never mutated, so reads need no locking.
type ProductRepo struct {
	ordered []domain.Product
	byID    map[string]domain.Product
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	r := &ProductRepo{
		ordered: make([]domain.Product, len(products)),
		byID:    make(map[string]domain.Product, len(products)),
	}
	copy(r.ordered, products)
	for _, p := range r.ordered {
		r.byID[p.ID] = p
	}
	return r
}

// DefaultCatalog is the stock shirt lineup served when no other seed is wired.
func DefaultCatalog() []domain.Product {
	price := decimal.RequireFromString("69.99")
	return []domain.Product{
		{ID: "oversized-tee-01", Name: "Oversized Tee 01", Price: price, Image: "assets/tee01.png"},
		{ID: "oversized-tee-02", Name: "Oversized Tee 02", Price: price, Image: "assets/tee02.png"},
		{ID: "oversized-tee-03", Name: "Oversized Tee 03", Price: price, Image: "assets/tee03.png"},
	}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}
