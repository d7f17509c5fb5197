package ports

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
)

// CartGateway is the upstream cart API. Every mutation returns the full cart
// so the storefront never has to compute authoritative state.
type CartGateway interface {
	Get(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, bookID int64, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error)
}

// CartView pairs the upstream cart with its display-only summary.
type CartView struct {
	Cart    *domain.Cart
	Summary domain.CartSummary
}

// CartService defines the cart use cases. Quantity semantics follow the
// upstream: updating an item to quantity <= 0 removes it.
type CartService interface {
	Load(ctx context.Context) (*CartView, error)
	AddItem(ctx context.Context, bookID int64, quantity int) (*CartView, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, itemID int64) (*CartView, error)
}
