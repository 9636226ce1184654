// Package middleware implements the admin route guard. Both variants share
// the same gate: a request passes only when it carries a session token that
// verifies and decodes to the ADMIN role. Missing token, failed verification
// and insufficient role are indistinguishable to the client.
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/session"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/token"
)

const identityKey = "identity"

// AdminPages guards the admin panel pages. Unauthenticated requests are
// redirected to the login page with the originally requested path carried
// in a callbackUrl query parameter. The login page itself is exempt.
func AdminPages(codec *token.Codec, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == loginPath {
				return next(c)
			}

			id := codec.Verify(session.Extract(c))
			if id == nil || id.Role != domain.RoleAdmin {
				target := path
				if !strings.HasPrefix(target, "/admin") {
					target = "/admin/dashboard"
				}
				q := url.Values{}
				q.Set("callbackUrl", target)
				return c.Redirect(http.StatusFound, loginPath+"?"+q.Encode())
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// AdminAPI guards the admin JSON endpoints; failures answer 401 instead of
// redirecting.
func AdminAPI(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := codec.Verify(session.Extract(c))
			if id == nil || id.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// Identity returns the identity the guard verified for this request, or nil
// when the request did not pass through a guard.
func Identity(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}
