package upstream

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// CheckoutGateway implements ports.CheckoutGateway.
type CheckoutGateway struct {
	client *Client
}

func NewCheckoutGateway(client *Client) *CheckoutGateway {
	return &CheckoutGateway{client: client}
}

func (g *CheckoutGateway) ApplyCoupon(ctx context.Context, code string, cartTotal decimal.Decimal) (*domain.CouponResult, error) {
	in := map[string]string{
		"code":       code,
		"cart_total": cartTotal.StringFixed(2),
	}
	var res domain.CouponResult
	if err := g.client.postJSON(ctx, "/coupons/apply/", in, &res); err != nil {
		return nil, err
	}
	if res.Code == "" {
		res.Code = code
	}
	return &res, nil
}

// checkoutRequest is the wire payload for the manual-payment checkout. The
// coupon code uses omitempty so a blank code is absent from the payload
// rather than sent as "".
type checkoutRequest struct {
	BillingAddressID int64  `json:"billing_address_id"`
	PaymentMethod    string `json:"payment_method"`
	PayerNumber      string `json:"payer_number"`
	TransactionID    string `json:"transaction_id"`
	CustomerNote     string `json:"customer_note,omitempty"`
	CouponCode       string `json:"coupon_code,omitempty"`
}

func (g *CheckoutGateway) SubmitOrder(ctx context.Context, input ports.OrderSubmission) (*domain.Order, error) {
	in := checkoutRequest{
		BillingAddressID: input.BillingAddressID,
		PaymentMethod:    input.PaymentMethod,
		PayerNumber:      input.PayerNumber,
		TransactionID:    input.TransactionID,
		CustomerNote:     input.CustomerNote,
		CouponCode:       input.CouponCode,
	}
	var order domain.Order
	if err := g.client.postJSON(ctx, "/checkout/", in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
