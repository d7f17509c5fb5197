package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/store"
	"github.com/boipoka/storefront/internal/upstream"
)

// Session validates the storefront session token, attaches the per-session
// state container, and forwards the wrapped upstream access token on the
// request context so every gateway call authenticates as the signed-in user.
func Session(jwtSecret string, sessions *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			sid, _ := claims["sid"].(string)
			username, _ := claims["sub"].(string)
			upstreamToken, _ := claims["upstream"].(string)
			if sid == "" || username == "" || upstreamToken == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session identity")
			}

			c.Set("sid", sid)
			c.Set("username", username)
			c.Set("session", sessions.GetOrCreate(sid))

			ctx := upstream.WithToken(c.Request().Context(), upstreamToken)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
