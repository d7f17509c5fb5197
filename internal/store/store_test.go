package store

import (
	"testing"
	"time"

	"github.com/boipoka/storefront/internal/core/domain"
)

func TestSessionActions(t *testing.T) {
	st := New(time.Hour)
	s := st.GetOrCreate("sid-1")

	snap := s.Snapshot()
	if snap.Auth.Authenticated {
		t.Fatalf("fresh session must be unauthenticated")
	}

	s.SetAuth(domain.User{ID: 1, Username: "alice"}, nil)
	s.SetCart(&domain.Cart{ID: 3, Items: []domain.CartItem{{ID: 1, Subtotal: "10.00"}}})

	snap = s.Snapshot()
	if !snap.Auth.Authenticated || snap.Auth.User.Username != "alice" {
		t.Fatalf("auth slice not hydrated: %+v", snap.Auth)
	}
	if snap.Cart.Cart == nil || snap.Cart.Cart.ID != 3 {
		t.Fatalf("cart slice not hydrated: %+v", snap.Cart)
	}

	s.ClearCart()
	s.ClearAuth()
	snap = s.Snapshot()
	if snap.Auth.Authenticated || snap.Cart.Cart != nil {
		t.Fatalf("clear actions did not reset state: %+v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	st := New(time.Hour)
	s := st.GetOrCreate("sid-1")
	s.SetAuth(domain.User{Username: "alice"}, nil)

	snap := s.Snapshot()
	s.ClearAuth()

	if !snap.Auth.Authenticated {
		t.Fatalf("snapshot must not observe later mutations")
	}
}

func TestStoreGetOrCreate_SameSession(t *testing.T) {
	st := New(time.Hour)
	a := st.GetOrCreate("sid-1")
	b := st.GetOrCreate("sid-1")
	if a != b {
		t.Fatalf("expected the same session instance")
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", st.Len())
	}
}

func TestStoreSweep_DropsIdleSessions(t *testing.T) {
	st := New(time.Minute)
	st.GetOrCreate("stale")
	fresh := st.GetOrCreate("fresh")
	fresh.touch(time.Now().UTC().Add(time.Hour))

	st.sweep(time.Now().UTC().Add(30 * time.Minute))

	if st.Len() != 1 {
		t.Fatalf("expected stale session dropped, have %d", st.Len())
	}
}

func TestStoreDelete(t *testing.T) {
	st := New(time.Hour)
	st.GetOrCreate("sid-1")
	st.Delete("sid-1")
	if st.Len() != 0 {
		t.Fatalf("expected empty store, got %d", st.Len())
	}
}
