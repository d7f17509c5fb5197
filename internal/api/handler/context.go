package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/store"
)

// ctxSession extracts the per-session state container attached by the Session
// middleware. Its presence proves the middleware ran; handlers on protected
// routes fail fast with 401 otherwise.
func ctxSession(c echo.Context) (*store.Session, error) {
	s, ok := c.Get("session").(*store.Session)
	if !ok || s == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return s, nil
}

func ctxUsername(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}
