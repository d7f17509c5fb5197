// Package store holds per-session storefront state: an auth slice and a cart
// slice, mirroring the latest upstream responses. The state is a display
// cache, never an authority — every mutation of the real cart or account
// round-trips to the upstream and the slices are re-hydrated from the
// response. All access goes through typed action methods; there is no ambient
// mutable state.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/boipoka/storefront/internal/api/metrics"
	"github.com/boipoka/storefront/internal/core/domain"
)

const (
	defaultTTL    = 24 * time.Hour
	sweepInterval = 10 * time.Minute
)

// AuthState is the auth slice: who is signed in, hydrated from the login
// response and /auth/me.
type AuthState struct {
	Authenticated bool            `json:"authenticated"`
	User          *domain.User    `json:"user,omitempty"`
	Profile       *domain.Profile `json:"profile,omitempty"`
}

// CartState is the cart slice: the last cart the upstream returned.
type CartState struct {
	Cart     *domain.Cart `json:"cart,omitempty"`
	LoadedAt time.Time    `json:"loaded_at,omitzero"`
}

// Snapshot is a copy of one session's state, safe to render without holding
// any lock.
type Snapshot struct {
	Auth AuthState `json:"auth"`
	Cart CartState `json:"cart"`
}

// Session is the state container for one storefront session.
type Session struct {
	mu       sync.RWMutex
	id       string
	lastSeen time.Time
	auth     AuthState
	cart     CartState
}

func (s *Session) ID() string { return s.id }

// SetAuth records a successful authentication.
func (s *Session) SetAuth(user domain.User, profile *domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.auth = AuthState{Authenticated: true, User: &u, Profile: profile}
}

// SetProfile updates the profile part of the auth slice.
func (s *Session) SetProfile(profile domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := profile
	s.auth.Profile = &p
}

// ClearAuth signs the session out.
func (s *Session) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthState{}
}

// SetCart replaces the cart slice with the latest upstream response.
func (s *Session) SetCart(cart *domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = CartState{Cart: cart, LoadedAt: time.Now().UTC()}
}

// ClearCart drops the cached cart, e.g. after a successful checkout.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = CartState{}
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Auth: s.auth, Cart: s.cart}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen) > ttl
}

// Store owns all live sessions, keyed by session id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// New creates a Store. Sessions idle longer than ttl are dropped by the
// sweeper; a non-positive ttl falls back to the default.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{sessions: make(map[string]*Session), ttl: ttl}
}

// GetOrCreate returns the session for id, creating it on first sight, and
// marks it as recently used.
func (st *Store) GetOrCreate(id string) *Session {
	now := time.Now().UTC()

	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch(now)
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		s.touch(now)
		return s
	}
	s = &Session{id: id, lastSeen: now}
	st.sessions[id] = s
	metrics.SessionsActive.Set(float64(len(st.sessions)))
	return s
}

// Delete removes a session outright (logout).
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	metrics.SessionsActive.Set(float64(len(st.sessions)))
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Start runs the expiry sweeper until ctx is cancelled.
func (st *Store) Start(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.sweep(time.Now().UTC())
		}
	}
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			delete(st.sessions, id)
		}
	}
	metrics.SessionsActive.Set(float64(len(st.sessions)))
}
