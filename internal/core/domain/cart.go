package domain

import "github.com/shopspring/decimal"

// CartItem is one line in the cart. UnitPrice and Subtotal are decimal strings
// exactly as the upstream serialises them; the upstream is authoritative for
// both, the storefront only re-displays.
type CartItem struct {
	ID        int64        `json:"id"`
	Book      *BookSummary `json:"book,omitempty"`
	Quantity  int          `json:"quantity"`
	UnitPrice string       `json:"unit_price"`
	Subtotal  string       `json:"subtotal"`
	Currency  string       `json:"currency,omitempty"`
}

// Cart mirrors the upstream cart resource.
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// CartSummary is the display-only aggregation of a cart. Total is the sum of
// the parseable line subtotals. InvalidItems lists the ids of line items whose
// subtotal could not be parsed as a decimal; those lines contribute zero to
// Total but are reported rather than silently swallowed.
type CartSummary struct {
	Total        decimal.Decimal
	ItemCount    int
	InvalidItems []int64
}

// Summarize computes the display total from the server-provided subtotals.
// The upstream remains authoritative: this value is never sent back as a
// price, only rendered (and used as the base amount for coupon application,
// which the upstream re-validates).
func (c *Cart) Summarize() CartSummary {
	s := CartSummary{Total: decimal.Zero}
	if c == nil {
		return s
	}
	for _, item := range c.Items {
		s.ItemCount += item.Quantity
		sub, err := decimal.NewFromString(item.Subtotal)
		if err != nil {
			s.InvalidItems = append(s.InvalidItems, item.ID)
			continue
		}
		s.Total = s.Total.Add(sub)
	}
	return s
}
