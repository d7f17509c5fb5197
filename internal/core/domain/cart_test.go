package domain

import "testing"

func TestCartSummarize(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ID: 1, Quantity: 1, Subtotal: "10.00"},
		{ID: 2, Quantity: 2, Subtotal: "5.50"},
	}}

	s := cart.Summarize()
	if got := s.Total.StringFixed(2); got != "15.50" {
		t.Fatalf("expected total 15.50, got %s", got)
	}
	if s.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", s.ItemCount)
	}
	if len(s.InvalidItems) != 0 {
		t.Fatalf("expected no invalid items, got %v", s.InvalidItems)
	}
}

func TestCartSummarize_MalformedSubtotal(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ID: 1, Quantity: 1, Subtotal: "10.00"},
		{ID: 2, Quantity: 1, Subtotal: "not-a-number"},
		{ID: 3, Quantity: 1, Subtotal: "5.50"},
	}}

	s := cart.Summarize()
	if got := s.Total.StringFixed(2); got != "15.50" {
		t.Fatalf("malformed line must contribute zero; expected 15.50, got %s", got)
	}
	if len(s.InvalidItems) != 1 || s.InvalidItems[0] != 2 {
		t.Fatalf("expected item 2 flagged, got %v", s.InvalidItems)
	}
}

func TestCartSummarize_NilAndEmpty(t *testing.T) {
	var nilCart *Cart
	if got := nilCart.Summarize().Total.StringFixed(2); got != "0.00" {
		t.Fatalf("nil cart total: %s", got)
	}
	if !nilCart.IsEmpty() {
		t.Fatalf("nil cart should be empty")
	}

	empty := &Cart{}
	if !empty.IsEmpty() {
		t.Fatalf("cart without items should be empty")
	}
}
