package domain

import "time"

// Payment methods accepted by the manual checkout flow. The buyer transfers
// the amount themselves and self-reports the transaction id; a human verifies
// it later.
const (
	PaymentManualBkash = "manual_bkash"
	PaymentManualNagad = "manual_nagad"
)

// CouponResult is the transient outcome of applying a coupon code against a
// cart total. Amounts are upstream-computed decimal strings; nothing here is
// persisted, a fresh application happens per checkout attempt.
type CouponResult struct {
	Code           string `json:"code"`
	DiscountAmount string `json:"discount_amount"`
	FinalAmount    string `json:"final_amount"`
}

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ID        int64        `json:"id"`
	Book      *BookSummary `json:"book,omitempty"`
	Quantity  int          `json:"quantity"`
	UnitPrice string       `json:"unit_price"`
	Subtotal  string       `json:"subtotal"`
}

// Order mirrors the upstream order record created by checkout.
type Order struct {
	ID            int64       `json:"id"`
	OrderNumber   string      `json:"order_number"`
	Status        string      `json:"status"`
	TotalAmount   string      `json:"total_amount"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// PurchaseItem is one owned ebook in the buyer's library.
type PurchaseItem struct {
	ID            int64        `json:"id"`
	Book          *BookSummary `json:"book,omitempty"`
	DownloadCount int          `json:"download_count"`
	DownloadLimit *int         `json:"download_limit,omitempty"`
	IsActive      bool         `json:"is_active"`
	PurchasedAt   time.Time    `json:"purchased_at"`
}

// DownloadLink is a short-lived token for fetching an owned ebook file.
type DownloadLink struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
