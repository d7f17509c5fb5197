package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
	"github.com/boipoka/storefront/internal/store"
)

type stubCartService struct {
	loadFn       func(ctx context.Context) (*ports.CartView, error)
	addItemFn    func(ctx context.Context, bookID int64, quantity int) (*ports.CartView, error)
	updateItemFn func(ctx context.Context, itemID int64, quantity int) (*ports.CartView, error)
	removeItemFn func(ctx context.Context, itemID int64) (*ports.CartView, error)
}

func (s *stubCartService) Load(ctx context.Context) (*ports.CartView, error) {
	return s.loadFn(ctx)
}

func (s *stubCartService) AddItem(ctx context.Context, bookID int64, quantity int) (*ports.CartView, error) {
	return s.addItemFn(ctx, bookID, quantity)
}

func (s *stubCartService) UpdateItem(ctx context.Context, itemID int64, quantity int) (*ports.CartView, error) {
	return s.updateItemFn(ctx, itemID, quantity)
}

func (s *stubCartService) RemoveItem(ctx context.Context, itemID int64) (*ports.CartView, error) {
	return s.removeItemFn(ctx, itemID)
}

func testCartView() *ports.CartView {
	cart := &domain.Cart{
		ID: 1,
		Items: []domain.CartItem{
			{ID: 10, Quantity: 1, UnitPrice: "250.00", Subtotal: "250.00", Currency: "BDT"},
			{ID: 11, Quantity: 2, UnitPrice: "100.00", Subtotal: "200.00", Currency: "BDT"},
		},
	}
	summary := cart.Summarize()
	return &ports.CartView{Cart: cart, Summary: summary}
}

func newCartContext(t *testing.T, e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *store.Session) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sessions := store.New(time.Hour)
	sess := sessions.GetOrCreate("sid-1")
	c.Set("sid", "sid-1")
	c.Set("session", sess)
	return c, rec, sess
}

func TestCartHandler_Get(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		loadFn: func(ctx context.Context) (*ports.CartView, error) {
			return testCartView(), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec, sess := newCartContext(t, e, http.MethodGet, "/cart", "")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Summary struct {
			Total     string `json:"total"`
			ItemCount int    `json:"item_count"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Summary.Total != "450.00" || resp.Summary.ItemCount != 3 {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}

	snap := sess.Snapshot()
	if snap.Cart.Cart == nil || len(snap.Cart.Cart.Items) != 2 {
		t.Fatalf("session cart not hydrated: %+v", snap.Cart)
	}
}

func TestCartHandler_AddItem_MissingBookID(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addItemFn: func(ctx context.Context, bookID int64, quantity int) (*ports.CartView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCartHandler(stub)

	c, _, _ := newCartContext(t, e, http.MethodPost, "/cart/items", `{"quantity":2}`)

	err := handler.AddItem(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCartHandler_UpdateItem_ZeroQuantityForwarded(t *testing.T) {
	e := newTestEcho()
	var gotQty = -1
	stub := &stubCartService{
		updateItemFn: func(ctx context.Context, itemID int64, quantity int) (*ports.CartView, error) {
			gotQty = quantity
			return &ports.CartView{Cart: &domain.Cart{ID: 1}, Summary: (&domain.Cart{}).Summarize()}, nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec, _ := newCartContext(t, e, http.MethodPatch, "/cart/items/10", `{"quantity":0}`)
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := handler.UpdateItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotQty != 0 {
		t.Fatalf("zero quantity should be forwarded, got %d", gotQty)
	}
}

func TestCartHandler_RemoveItem_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewCartHandler(&stubCartService{})

	c, _, _ := newCartContext(t, e, http.MethodDelete, "/cart/items/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.RemoveItem(c); err != domain.ErrCartItemNotFound {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}
