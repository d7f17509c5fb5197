package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/core/domain"
)

type stubCartGateway struct {
	cart *domain.Cart
	err  error

	lastUpdateID  int64
	lastUpdateQty int
	removedID     int64
}

func (g *stubCartGateway) Get(context.Context) (*domain.Cart, error) {
	return g.cart, g.err
}

func (g *stubCartGateway) AddItem(_ context.Context, bookID int64, quantity int) (*domain.Cart, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.cart.Items = append(g.cart.Items, domain.CartItem{
		ID:       int64(len(g.cart.Items) + 1),
		Book:     &domain.BookSummary{ID: bookID},
		Quantity: quantity,
		Subtotal: "0.00",
	})
	return g.cart, nil
}

func (g *stubCartGateway) UpdateItem(_ context.Context, itemID int64, quantity int) (*domain.Cart, error) {
	g.lastUpdateID, g.lastUpdateQty = itemID, quantity
	return g.cart, g.err
}

func (g *stubCartGateway) RemoveItem(_ context.Context, itemID int64) (*domain.Cart, error) {
	g.removedID = itemID
	return g.cart, g.err
}

func TestCartService_Load_Summary(t *testing.T) {
	gw := &stubCartGateway{cart: &domain.Cart{ID: 9, Items: []domain.CartItem{
		{ID: 1, Quantity: 1, Subtotal: "10.00"},
		{ID: 2, Quantity: 1, Subtotal: "5.50"},
	}}}
	svc := NewCartService(gw, zerolog.Nop())

	view, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := view.Summary.Total.StringFixed(2); got != "15.50" {
		t.Fatalf("expected total 15.50, got %s", got)
	}
	if len(view.Summary.InvalidItems) != 0 {
		t.Fatalf("expected no flagged lines, got %v", view.Summary.InvalidItems)
	}
}

func TestCartService_Load_FlagsMalformedSubtotal(t *testing.T) {
	gw := &stubCartGateway{cart: &domain.Cart{Items: []domain.CartItem{
		{ID: 1, Quantity: 1, Subtotal: "10.00"},
		{ID: 7, Quantity: 1, Subtotal: "??"},
	}}}
	svc := NewCartService(gw, zerolog.Nop())

	view, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := view.Summary.Total.StringFixed(2); got != "10.00" {
		t.Fatalf("expected total 10.00, got %s", got)
	}
	if len(view.Summary.InvalidItems) != 1 || view.Summary.InvalidItems[0] != 7 {
		t.Fatalf("expected item 7 flagged, got %v", view.Summary.InvalidItems)
	}
}

func TestCartService_AddItem_DefaultsQuantity(t *testing.T) {
	gw := &stubCartGateway{cart: &domain.Cart{}}
	svc := NewCartService(gw, zerolog.Nop())

	view, err := svc.AddItem(context.Background(), 42, 0)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(view.Cart.Items) != 1 || view.Cart.Items[0].Quantity != 1 {
		t.Fatalf("expected one item with quantity 1, got %+v", view.Cart.Items)
	}
}

func TestCartService_UpdateItem_PassesThrough(t *testing.T) {
	gw := &stubCartGateway{cart: &domain.Cart{}}
	svc := NewCartService(gw, zerolog.Nop())

	if _, err := svc.UpdateItem(context.Background(), 3, 0); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	// Zero quantity goes to the upstream unchanged; deletion is its call.
	if gw.lastUpdateID != 3 || gw.lastUpdateQty != 0 {
		t.Fatalf("unexpected update args: id=%d qty=%d", gw.lastUpdateID, gw.lastUpdateQty)
	}
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	gw := &stubCartGateway{err: domain.ErrCartItemNotFound}
	svc := NewCartService(gw, zerolog.Nop())

	if _, err := svc.RemoveItem(context.Background(), 99); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}
