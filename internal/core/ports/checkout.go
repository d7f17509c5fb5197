package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/boipoka/storefront/internal/core/domain"
)

// CheckoutGateway is the upstream coupon/checkout API.
type CheckoutGateway interface {
	ApplyCoupon(ctx context.Context, code string, cartTotal decimal.Decimal) (*domain.CouponResult, error)
	SubmitOrder(ctx context.Context, input OrderSubmission) (*domain.Order, error)
}

// OrderSubmission is the payload sent to the upstream checkout endpoint.
// CouponCode must be omitted from the wire entirely when blank, never sent as
// an empty string.
type OrderSubmission struct {
	BillingAddressID int64
	PaymentMethod    string
	PayerNumber      string
	TransactionID    string
	CustomerNote     string
	CouponCode       string
}

// CheckoutInput carries one checkout attempt. Owner scopes the idempotency
// key to the submitting user; IdempotencyKey is generated when empty.
type CheckoutInput struct {
	Owner          string
	IdempotencyKey string
	Submission     OrderSubmission
}

// CheckoutResult is returned after an order submission. Replayed is true when
// the idempotency key matched a previous attempt and no new order was created.
type CheckoutResult struct {
	Order    *domain.Order
	Replayed bool
}

// CheckoutService defines the checkout use cases.
type CheckoutService interface {
	ApplyCoupon(ctx context.Context, code string) (*domain.CouponResult, error)
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}
