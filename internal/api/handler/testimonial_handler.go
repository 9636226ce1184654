package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/metrics"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// TestimonialHandler serves the public testimonial feed and the admin CRUD
// endpoints.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// PublicList handles GET /api/testimonials: active entries, newest first,
// without the moderation flag.
func (h *TestimonialHandler) PublicList(c echo.Context) error {
	items, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]testimonialResponse, 0, len(items))
	for i := range items {
		out = append(out, toTestimonialResponse(&items[i], false))
	}
	return c.JSON(http.StatusOK, out)
}

// AdminList handles GET /api/admin/testimonials: everything, flag included.
func (h *TestimonialHandler) AdminList(c echo.Context) error {
	items, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]testimonialResponse, 0, len(items))
	for i := range items {
		out = append(out, toTestimonialResponse(&items[i], true))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/admin/testimonials/:id.
func (h *TestimonialHandler) Get(c echo.Context) error {
	t, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toTestimonialResponse(t, true))
}

// Create handles POST /api/admin/testimonials. Rating defaults to 5 and
// isActive to true when omitted, matching the public form defaults.
func (h *TestimonialHandler) Create(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	t, err := h.decode(c)
	if err != nil {
		return badRequest(c, err)
	}

	created, err := h.service.Create(c.Request().Context(), t)
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("testimonial", "create").Inc()
	return c.JSON(http.StatusCreated, toTestimonialResponse(created, true))
}

// Update handles PUT /api/admin/testimonials/:id.
func (h *TestimonialHandler) Update(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	t, err := h.decode(c)
	if err != nil {
		return badRequest(c, err)
	}
	t.ID = c.Param("id")

	updated, err := h.service.Update(c.Request().Context(), t)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
		}
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("testimonial", "update").Inc()
	return c.JSON(http.StatusOK, toTestimonialResponse(updated, true))
}

// Delete handles DELETE /api/admin/testimonials/:id.
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
		}
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("testimonial", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "testimonial deleted successfully"})
}

func (h *TestimonialHandler) decode(c echo.Context) (*domain.Testimonial, error) {
	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return nil, errInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &domain.Testimonial{
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Content:  req.Content,
		Rating:   rating,
		Image:    req.Image,
		IsActive: active,
	}, nil
}

func toTestimonialResponse(t *domain.Testimonial, includeFlag bool) testimonialResponse {
	resp := testimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Company:   t.Company,
		Content:   t.Content,
		Rating:    t.Rating,
		Image:     t.Image,
		CreatedAt: t.CreatedAt,
	}
	if includeFlag {
		active := t.IsActive
		resp.IsActive = &active
	}
	return resp
}
