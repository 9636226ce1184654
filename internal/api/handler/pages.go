package handler

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer satisfies echo.Renderer over the embedded page templates.
// Markup is deliberately bare: layout and styling live outside this service.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// PagesHandler renders the public marketing pages and the admin panel shells.
type PagesHandler struct {
	catalog      ports.CatalogService
	testimonials ports.TestimonialService
}

func NewPagesHandler(catalog ports.CatalogService, testimonials ports.TestimonialService) *PagesHandler {
	return &PagesHandler{catalog: catalog, testimonials: testimonials}
}

func (h *PagesHandler) Home(c echo.Context) error {
	items, err := h.testimonials.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "home.html", map[string]any{
		"Testimonials": items,
	})
}

func (h *PagesHandler) Services(c echo.Context) error {
	ctx := c.Request().Context()

	mindfulness, err := h.catalog.ListPublic(ctx, domain.KindMindfulness)
	if err != nil {
		return err
	}
	counselling, err := h.catalog.ListPublic(ctx, domain.KindCounselling)
	if err != nil {
		return err
	}
	beyondWords, err := h.catalog.ListPublic(ctx, domain.KindBeyondWords)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "services.html", map[string]any{
		"Mindfulness": mindfulness,
		"Counselling": counselling,
		"BeyondWords": beyondWords,
	})
}

func (h *PagesHandler) Corporate(c echo.Context) error {
	services, err := h.catalog.ListPublic(c.Request().Context(), domain.KindCorporate)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "corporate.html", map[string]any{
		"Services": services,
	})
}

func (h *PagesHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", nil)
}

func (h *PagesHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", nil)
}

// Legal renders one of the static legal pages (privacy, terms, disclaimer).
func (h *PagesHandler) Legal(title, body string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "legal.html", map[string]any{
			"Title": title,
			"Body":  body,
		})
	}
}

// AdminLogin renders the login shell; the callbackUrl query parameter is
// passed through so the form can return the user to their destination.
func (h *PagesHandler) AdminLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login.html", map[string]any{
		"CallbackURL": c.QueryParam("callbackUrl"),
	})
}

func (h *PagesHandler) AdminDashboard(c echo.Context) error {
	counts, err := h.catalog.Counts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin_dashboard.html", map[string]any{
		"Mindfulness": counts[domain.KindMindfulness],
		"Counselling": counts[domain.KindCounselling],
		"BeyondWords": counts[domain.KindBeyondWords],
		"Corporate":   counts[domain.KindCorporate],
	})
}

// AdminSection renders the shell page for one management section.
func (h *PagesHandler) AdminSection(title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "admin_section.html", map[string]any{
			"Title": title,
		})
	}
}

// AdminRoot redirects /admin to the dashboard.
func (h *PagesHandler) AdminRoot(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}
