package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/metrics"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// ContactHandler accepts contact form submissions and hands them to the
// mail-sending service.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact. Mail delivery failures surface as a
// generic server error; nothing is retried.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.ContactMessagesTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Message sent successfully"})
}
