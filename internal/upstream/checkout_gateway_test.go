package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/boipoka/storefront/internal/core/ports"
)

func TestCheckoutGateway_SubmitOrder_OmitsBlankCoupon(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		w.Write([]byte(`{"id":1,"order_number":"ORD-1","status":"pending_verification"}`))
	}))
	defer srv.Close()

	gw := NewCheckoutGateway(testClient(srv))
	_, err := gw.SubmitOrder(context.Background(), ports.OrderSubmission{
		BillingAddressID: 3,
		PaymentMethod:    "manual_nagad",
		PayerNumber:      "01800000000",
		TransactionID:    "TX9",
	})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if _, present := payload["coupon_code"]; present {
		t.Fatalf("blank coupon_code must be absent from the payload: %+v", payload)
	}
	if _, present := payload["customer_note"]; present {
		t.Fatalf("blank customer_note must be absent from the payload: %+v", payload)
	}
	if payload["payment_method"] != "manual_nagad" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestCheckoutGateway_SubmitOrder_SendsCoupon(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		w.Write([]byte(`{"id":2,"order_number":"ORD-2","status":"pending_verification"}`))
	}))
	defer srv.Close()

	gw := NewCheckoutGateway(testClient(srv))
	_, err := gw.SubmitOrder(context.Background(), ports.OrderSubmission{
		BillingAddressID: 3,
		PaymentMethod:    "manual_bkash",
		PayerNumber:      "01700000000",
		TransactionID:    "TX10",
		CouponCode:       "SAVE10",
	})
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if payload["coupon_code"] != "SAVE10" {
		t.Fatalf("coupon_code missing from payload: %+v", payload)
	}
}

func TestCheckoutGateway_ApplyCoupon_SendsCartTotal(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		w.Write([]byte(`{"discount_amount":"25.00","final_amount":"225.00"}`))
	}))
	defer srv.Close()

	gw := NewCheckoutGateway(testClient(srv))
	res, err := gw.ApplyCoupon(context.Background(), "FLAT25", decimal.RequireFromString("250.00"))
	if err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}

	if payload["code"] != "FLAT25" || payload["cart_total"] != "250.00" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	// upstream omitted the code, gateway backfills it
	if res.Code != "FLAT25" || res.FinalAmount != "225.00" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
