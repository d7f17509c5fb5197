package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// CheckoutHandler covers coupon application and manual-payment order
// submission. Duplicate submissions carrying the same Idempotency-Key header
// replay the stored order instead of creating a second one.
type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type applyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type checkoutRequest struct {
	BillingAddressID int64  `json:"billing_address_id" validate:"required,gt=0"`
	PaymentMethod    string `json:"payment_method"     validate:"required,oneof=manual_bkash manual_nagad"`
	PayerNumber      string `json:"payer_number"       validate:"required"`
	TransactionID    string `json:"transaction_id"     validate:"required"`
	CustomerNote     string `json:"customer_note"`
	CouponCode       string `json:"coupon_code"`
}

type checkoutResponse struct {
	Order    *domain.Order `json:"order"`
	Replayed bool          `json:"replayed"`
	Next     string        `json:"next"`
}

// ApplyCoupon prices a coupon against the current cart total.
//
// @Summary      Apply a coupon
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      applyCouponRequest  true  "coupon code"
// @Success      200      {object}  domain.CouponResult
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Router       /checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c echo.Context) error {
	var req applyCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ApplyCoupon(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Checkout submits the order.
//
// @Summary      Submit the order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "replay key for safe retries"
// @Param        payload          body      checkoutRequest  true   "order submission"
// @Success      201              {object}  checkoutResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		Owner:          ctxUsername(c),
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
		Submission: ports.OrderSubmission{
			BillingAddressID: req.BillingAddressID,
			PaymentMethod:    req.PaymentMethod,
			PayerNumber:      req.PayerNumber,
			TransactionID:    req.TransactionID,
			CustomerNote:     req.CustomerNote,
			CouponCode:       req.CouponCode,
		},
	})
	if err != nil {
		return err
	}

	sess.ClearCart()
	return c.JSON(http.StatusCreated, checkoutResponse{
		Order:    result.Order,
		Replayed: result.Replayed,
		Next:     "/library",
	})
}
