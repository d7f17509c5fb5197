package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/store"
	"github.com/boipoka/storefront/internal/upstream"
)

func signSession(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	sessions := store.New(time.Hour)
	signed := signSession(t, "secret", jwt.MapClaims{
		"sid":      "sid-1",
		"sub":      "alice",
		"upstream": "up-token",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session("secret", sessions)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("sid") != "sid-1" || c.Get("username") != "alice" {
			t.Fatalf("claims not set: sid=%v username=%v", c.Get("sid"), c.Get("username"))
		}
		if _, ok := c.Get("session").(*store.Session); !ok {
			t.Fatalf("session container not attached")
		}
		if got := upstream.TokenFromContext(c.Request().Context()); got != "up-token" {
			t.Fatalf("upstream token not forwarded, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if sessions.Len() != 1 {
		t.Fatalf("expected session created in store")
	}
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Session("secret", store.New(time.Hour))
	err := mw(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSessionMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	signed := signSession(t, "secret", jwt.MapClaims{
		"sid":      "sid-1",
		"sub":      "alice",
		"upstream": "up-token",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Session("secret", store.New(time.Hour))
	err := mw(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestSessionMiddleware_MissingSubjectClaim(t *testing.T) {
	e := echo.New()
	signed := signSession(t, "secret", jwt.MapClaims{
		"sid":      "sid-1",
		"upstream": "up-token",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Session("secret", store.New(time.Hour))
	err := mw(func(echo.Context) error { return nil })(c)

	// a blank subject would leave checkout replay keys unscoped by user
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing subject claim, got %v", err)
	}
}

func TestSessionMiddleware_MissingUpstreamClaim(t *testing.T) {
	e := echo.New()
	signed := signSession(t, "secret", jwt.MapClaims{
		"sid": "sid-1",
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Session("secret", store.New(time.Hour))
	err := mw(func(echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing upstream claim, got %v", err)
	}
}
