package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type fakeCart struct {
	items []CartItem
}

func (f fakeCart) Snapshot(ctx context.Context, sessionID string) ([]CartItem, error) {
	return f.items, nil
}

type fakeCatalog struct {
	known map[string]Product
}

var errUnknownProduct = errors.New("unknown product")

func (f fakeCatalog) GetProduct(ctx context.Context, productID string) (Product, error) {
	p, ok := f.known[productID]
	if !ok {
		return Product{}, errUnknownProduct
	}
	return p, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestQuoteTotals(t *testing.T) {
	cart := fakeCart{items: []CartItem{
		{ProductID: "a", Name: "A", UnitPrice: price("69.99"), Quantity: 2},
		{ProductID: "b", Name: "B", UnitPrice: price("69.99"), Quantity: 1},
	}}
	catalog := fakeCatalog{known: map[string]Product{
		"a": {ID: "a", Name: "A", Price: price("69.99")},
		"b": {ID: "b", Name: "B", Price: price("69.99")},
	}}

	q, err := NewService(cart, catalog, 4).Quote(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	if len(q.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(q.Lines))
	}
	if got := q.Lines[0].Subtotal.StringFixed(2); got != "139.98" {
		t.Fatalf("expected first subtotal 139.98, got %s", got)
	}
	if got := q.Lines[1].Subtotal.StringFixed(2); got != "69.99" {
		t.Fatalf("expected second subtotal 69.99, got %s", got)
	}
	if got := q.Total.StringFixed(2); got != "209.97" {
		t.Fatalf("expected total 209.97, got %s", got)
	}
}

func TestQuoteKeepsSnapshotOrder(t *testing.T) {
	cart := fakeCart{items: []CartItem{
		{ProductID: "c", Name: "C", UnitPrice: price("1.00"), Quantity: 1},
		{ProductID: "a", Name: "A", UnitPrice: price("2.00"), Quantity: 1},
		{ProductID: "b", Name: "B", UnitPrice: price("3.00"), Quantity: 1},
	}}
	catalog := fakeCatalog{known: map[string]Product{
		"a": {ID: "a"}, "b": {ID: "b"}, "c": {ID: "c"},
	}}

	q, err := NewService(cart, catalog, 2).Quote(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}

	want := []string{"c", "a", "b"}
	for i, id := range want {
		if q.Lines[i].ProductID != id {
			t.Fatalf("expected order %v, got %+v", want, q.Lines)
		}
	}
}

func TestQuoteEmptyCart(t *testing.T) {
	q, err := NewService(fakeCart{}, fakeCatalog{}, 0).Quote(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Quote failed on empty cart: %v", err)
	}

	if len(q.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(q.Lines))
	}
	if got := q.Total.StringFixed(2); got != "0.00" {
		t.Fatalf("expected total 0.00, got %s", got)
	}
}

func TestQuoteUnknownProduct(t *testing.T) {
	cart := fakeCart{items: []CartItem{
		{ProductID: "ghost", Name: "Ghost", UnitPrice: price("1.00"), Quantity: 1},
	}}

	_, err := NewService(cart, fakeCatalog{}, 4).Quote(context.Background(), "s1")
	if !errors.Is(err, errUnknownProduct) {
		t.Fatalf("expected unknown product error, got %v", err)
	}
}
