package echo

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/haanhduc/mycontact/internal/application/auth"
	domain "github.com/haanhduc/mycontact/internal/domain/user"
)

const sessionContextKey = "session"

// RequireSession rejects requests without a valid bearer token and
// stashes the parsed claims on the echo context.
func RequireSession(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return fail(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			}

			claims, err := issuer.Parse(token)
			if err != nil {
				return fail(c, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			}

			c.Set(sessionContextKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sessionFrom(c).Role != domain.RoleAdmin {
				return fail(c, http.StatusForbidden, "forbidden", "admin role required")
			}
			return next(c)
		}
	}
}

func sessionFrom(c echo.Context) auth.SessionClaims {
	claims, _ := c.Get(sessionContextKey).(auth.SessionClaims)
	return claims
}
