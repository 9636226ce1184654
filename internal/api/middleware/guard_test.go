package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/session"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/token"
)

const loginPath = "/admin/login"

func newTestCodec() *token.Codec {
	return token.NewCodec("test-secret", time.Hour)
}

func signedToken(t *testing.T, codec *token.Codec, role domain.Role) string {
	t.Helper()
	signed, err := codec.Issue(&domain.Identity{
		ID:    "user-1",
		Email: "admin@example.com",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func request(path string, cookie string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	return req
}

func TestAdminPages_RedirectsWithoutToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	rec := httptest.NewRecorder()
	c := e.NewContext(request("/admin/dashboard", ""), rec)

	handler := AdminPages(codec, loginPath)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Path != loginPath {
		t.Fatalf("expected redirect to %s, got %s", loginPath, loc.Path)
	}
	if got := loc.Query().Get("callbackUrl"); got != "/admin/dashboard" {
		t.Fatalf("expected callbackUrl /admin/dashboard, got %q", got)
	}
}

func TestAdminPages_RedirectsNonAdminRole(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	rec := httptest.NewRecorder()
	c := e.NewContext(request("/admin/testimonials", signedToken(t, codec, domain.RoleUser)), rec)

	handler := AdminPages(codec, loginPath)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	loc, _ := url.Parse(rec.Header().Get(echo.HeaderLocation))
	if got := loc.Query().Get("callbackUrl"); got != "/admin/testimonials" {
		t.Fatalf("expected callbackUrl /admin/testimonials, got %q", got)
	}
}

func TestAdminPages_AllowsAdmin(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	rec := httptest.NewRecorder()
	c := e.NewContext(request("/admin/dashboard", signedToken(t, codec, domain.RoleAdmin)), rec)

	called := false
	handler := AdminPages(codec, loginPath)(func(c echo.Context) error {
		called = true
		id := Identity(c)
		if id == nil || id.Email != "admin@example.com" {
			t.Fatalf("identity not set: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAdminPages_LoginPageExempt(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	rec := httptest.NewRecorder()
	c := e.NewContext(request(loginPath, ""), rec)

	called := false
	handler := AdminPages(codec, loginPath)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("login page must be reachable without a token")
	}
}

func TestAdminAPI_Unauthorized(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()

	cases := []struct {
		name   string
		cookie string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
		{"non-admin role", signedToken(t, codec, domain.RoleUser)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(request("/api/admin/testimonials", tc.cookie), rec)

			handler := AdminAPI(codec)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", httpErr.Code)
			}
		})
	}
}

func TestAdminAPI_AllowsAdmin(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	rec := httptest.NewRecorder()
	c := e.NewContext(request("/api/admin/testimonials", signedToken(t, codec, domain.RoleAdmin)), rec)

	called := false
	handler := AdminAPI(codec)(func(c echo.Context) error {
		called = true
		if Identity(c) == nil {
			t.Fatalf("identity not set")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAdminAPI_BearerHeader(t *testing.T) {
	e := echo.New()
	codec := newTestCodec()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/service-counts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signedToken(t, codec, domain.RoleAdmin))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AdminAPI(codec)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("bearer token must be accepted")
	}
}
