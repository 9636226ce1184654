package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/metrics"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// NewsletterHandler accepts signups and serves the admin-only subscriber
// listing.
type NewsletterHandler struct {
	service ports.NewsletterService
}

func NewNewsletterHandler(service ports.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe handles POST /api/newsletter.
//
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body      newsletterRequest  true  "Signup fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  validationResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	if err := h.service.Subscribe(c.Request().Context(), req.Name, req.Email); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			metrics.NewsletterSignupsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: "this email is already subscribed to our newsletter"})
		}
		metrics.NewsletterSignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.NewsletterSignupsTotal.WithLabelValues("subscribed").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Successfully subscribed to newsletter!"})
}

// subscriptionsResponse wraps the admin subscriber listing.
type subscriptionsResponse struct {
	Data []domain.Subscription `json:"data"`
}

// List handles GET /api/newsletter (admin-gated).
func (h *NewsletterHandler) List(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	subs, err := h.service.Subscriptions(c.Request().Context())
	if err != nil {
		return err
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return c.JSON(http.StatusOK, subscriptionsResponse{Data: subs})
}
