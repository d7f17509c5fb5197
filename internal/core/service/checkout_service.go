package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/api/metrics"
	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// ReplayStore remembers the order produced by a checkout attempt, keyed by
// owner and idempotency key, so a duplicate submission replays the original
// order instead of creating a second one.
type ReplayStore interface {
	// Find returns the stored order for the key, or (nil, nil) when the key
	// has not been seen.
	Find(ctx context.Context, owner, key string) (*domain.Order, error)
	Save(ctx context.Context, owner, key string, order *domain.Order) error
}

// CheckoutService implements coupon application and the manual-payment
// checkout submission.
type CheckoutService struct {
	cart     ports.CartGateway
	checkout ports.CheckoutGateway
	replays  ReplayStore
	log      zerolog.Logger
}

func NewCheckoutService(cart ports.CartGateway, checkout ports.CheckoutGateway, replays ReplayStore, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{cart: cart, checkout: checkout, replays: replays, log: log}
}

// ApplyCoupon loads the cart, computes the display total, and asks the
// upstream to price the coupon against it. The result is transient: it is
// returned for display and re-sent (as the code only) at checkout, where the
// upstream re-validates.
func (s *CheckoutService) ApplyCoupon(ctx context.Context, code string) (*domain.CouponResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrCouponCodeRequired
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	result, err := s.checkout.ApplyCoupon(ctx, code, cart.Summarize().Total)
	if err != nil {
		metrics.CouponApplicationsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	metrics.CouponApplicationsTotal.WithLabelValues("applied").Inc()
	s.log.Info().Str("code", code).Str("final_amount", result.FinalAmount).Msg("coupon applied")
	return result, nil
}

// Checkout submits one manual-payment order. Each attempt carries an
// idempotency key (generated when the caller did not supply one); a key that
// was already fulfilled replays the stored order without contacting the
// upstream, so a double-click or a retry after timeout cannot create a
// duplicate order.
func (s *CheckoutService) Checkout(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	if input.Submission.BillingAddressID == 0 {
		return nil, domain.ErrBillingAddressRequired
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}

	if prior, err := s.replays.Find(ctx, input.Owner, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("replay lookup failed, submitting anyway")
	} else if prior != nil {
		metrics.CheckoutAttemptsTotal.WithLabelValues("replayed").Inc()
		s.log.Info().Str("key", key).Str("order_number", prior.OrderNumber).Msg("idempotent replay")
		return &ports.CheckoutResult{Order: prior, Replayed: true}, nil
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		metrics.CheckoutAttemptsTotal.WithLabelValues("empty_cart").Inc()
		return nil, domain.ErrEmptyCart
	}

	// A blank coupon code must be absent from the upstream payload entirely.
	input.Submission.CouponCode = strings.TrimSpace(input.Submission.CouponCode)

	order, err := s.checkout.SubmitOrder(ctx, input.Submission)
	if err != nil {
		metrics.CheckoutAttemptsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	if saveErr := s.replays.Save(ctx, input.Owner, key, order); saveErr != nil {
		s.log.Warn().Err(saveErr).Str("key", key).Msg("failed to record checkout replay key")
	}

	metrics.CheckoutAttemptsTotal.WithLabelValues("created").Inc()
	s.log.Info().
		Str("order_number", order.OrderNumber).
		Str("payment_method", order.PaymentMethod).
		Str("key", key).
		Msg("order submitted for manual verification")

	return &ports.CheckoutResult{Order: order}, nil
}
