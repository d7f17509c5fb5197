package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/api/metrics"
	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// CartService wraps the upstream cart with the display-only summary. Every
// operation round-trips; the upstream stays authoritative for quantities,
// unit prices, and subtotals.
type CartService struct {
	gateway ports.CartGateway
	log     zerolog.Logger
}

func NewCartService(gateway ports.CartGateway, log zerolog.Logger) *CartService {
	return &CartService{gateway: gateway, log: log}
}

func (s *CartService) Load(ctx context.Context) (*ports.CartView, error) {
	cart, err := s.gateway.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

func (s *CartService) AddItem(ctx context.Context, bookID int64, quantity int) (*ports.CartView, error) {
	if quantity <= 0 {
		quantity = 1
	}
	cart, err := s.gateway.AddItem(ctx, bookID, quantity)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// UpdateItem sets a line's quantity. The upstream removes the line when the
// quantity drops to zero or below, and returns the remaining cart either way.
func (s *CartService) UpdateItem(ctx context.Context, itemID int64, quantity int) (*ports.CartView, error) {
	cart, err := s.gateway.UpdateItem(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID int64) (*ports.CartView, error) {
	cart, err := s.gateway.RemoveItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// view computes the display summary. A line whose server-provided subtotal
// fails decimal parsing contributes zero to the total and is flagged in the
// summary and the logs instead of being silently coerced.
func (s *CartService) view(cart *domain.Cart) *ports.CartView {
	summary := cart.Summarize()
	if n := len(summary.InvalidItems); n > 0 {
		metrics.CartLinesFlaggedTotal.Add(float64(n))
		s.log.Warn().
			Int64("cart_id", cart.ID).
			Interface("item_ids", summary.InvalidItems).
			Msg("cart lines with unparseable subtotal excluded from display total")
	}
	return &ports.CartView{Cart: cart, Summary: summary}
}
