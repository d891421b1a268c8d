package adapter

import (
	"context"

	cartapp "github.com/lotusnegra/storefront/internal/cart/app"
	quoteapp "github.com/lotusnegra/storefront/internal/quote/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Snapshot(ctx context.Context, sessionID string) ([]quoteapp.CartItem, error) {
	items, err := r.svc.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]quoteapp.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, quoteapp.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return out, nil
}
