// Package session reads and writes the session token on HTTP traffic. The
// token travels in an http-only cookie; a bearer Authorization header is
// accepted as a fallback for clients that cannot send cookies.
package session

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie key.
const CookieName = "auth-token"

// cookieMaxAge matches the token TTL: 30 days, in seconds.
const cookieMaxAge = 30 * 24 * 60 * 60

// Manager attaches and detaches the session cookie on responses.
type Manager struct {
	secure bool
}

// NewManager creates a Manager. secure controls the cookie's Secure
// attribute and should be true in production.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// Attach sets the session cookie on the outgoing response.
func (m *Manager) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Detach expires the session cookie. Idempotent.
func (m *Manager) Detach(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Extract returns the raw session token from the request: the cookie when
// present, otherwise a bearer Authorization header, otherwise "".
func Extract(c echo.Context) string {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
