package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/upstream"
)

// errorResponse is the canonical error envelope for all API errors. Detail is
// the human-readable message a page renders inline.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Surfaces the upstream's own detail message verbatim when a call behind
//     the page failed with one.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrAddressNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrCouponCodeRequired),
		errors.Is(err, domain.ErrBillingAddressRequired):
		return http.StatusBadRequest, err.Error()
	}

	// Upstream rejection: pass its status and detail through verbatim so the
	// user sees the same message the storefront would have rendered.
	var ue *upstream.Error
	if errors.As(err, &ue) {
		if ue.Detail != "" {
			return ue.StatusCode, ue.Detail
		}
		return ue.StatusCode, http.StatusText(ue.StatusCode)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
