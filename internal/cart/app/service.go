package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lotusnegra/storefront/internal/cart/domain"
)

// Product is the slice of a catalog entry the cart needs at add time.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Service owns the per-session carts. Every quantity passes through
// domain.NormalizeQuantity, so no cart operation can fail on user input.
type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Cart(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.repo.Get(ctx, sessionID)
}

// AddItem merges rawQuantity of the product into the session's cart and
// resets the product's staged quantity back to 1.
func (s *Service) AddItem(ctx context.Context, sessionID string, product Product, rawQuantity string) error {
	item := domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  domain.NormalizeQuantity(rawQuantity),
	}
	if err := s.repo.AddItem(ctx, sessionID, item); err != nil {
		return err
	}
	return s.repo.SetPendingQuantity(ctx, sessionID, product.ID, "1")
}

// SetQuantity replaces the quantity on an existing line. Unlike AddItem this
// does not accumulate; a product not in the cart is left alone.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID, rawQuantity string) error {
	return s.repo.SetItemQuantity(ctx, sessionID, productID, domain.NormalizeQuantity(rawQuantity))
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) error {
	return s.repo.RemoveItem(ctx, sessionID, productID)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}

// Discard drops the session's cart entirely. Called on session end.
func (s *Service) Discard(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// Snapshot returns an ordered copy of the session's line items that later
// mutations cannot affect.
func (s *Service) Snapshot(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cart.Snapshot(), nil
}

// StageQuantity stores the free-text quantity typed next to a catalog entry.
// It is UI state, kept here so the add flow can reset it.
func (s *Service) StageQuantity(ctx context.Context, sessionID, productID, raw string) error {
	return s.repo.SetPendingQuantity(ctx, sessionID, productID, raw)
}

func (s *Service) StagedQuantity(ctx context.Context, sessionID, productID string) (string, error) {
	return s.repo.PendingQuantity(ctx, sessionID, productID)
}
