package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/metrics"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// CatalogHandler serves both the public listings and the admin CRUD
// endpoints for the four service catalogues. Handlers are built per kind at
// route registration time.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// PublicList handles GET /api/<kind>-services: the unauthenticated listing,
// ordered by creation time ascending.
//
// @Summary      List services of one catalogue
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   serviceResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/mindfulness-services [get]
func (h *CatalogHandler) PublicList(kind domain.ServiceKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		services, err := h.service.ListPublic(c.Request().Context(), kind)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toServiceResponses(services))
	}
}

// AdminList handles GET /api/admin/<kind>-services, newest first.
func (h *CatalogHandler) AdminList(kind domain.ServiceKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		services, err := h.service.ListAdmin(c.Request().Context(), kind)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toServiceResponses(services))
	}
}

// Get handles GET /api/admin/<kind>-services/:id.
func (h *CatalogHandler) Get(kind domain.ServiceKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		svc, err := h.service.Get(c.Request().Context(), kind, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			}
			return err
		}
		return c.JSON(http.StatusOK, toServiceResponse(svc))
	}
}

// Create handles POST /api/admin/<kind>-services.
//
// @Summary      Create a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Success      201  {object}  serviceResponse
// @Failure      400  {object}  validationResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/mindfulness-services [post]
func (h *CatalogHandler) Create(kind domain.ServiceKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := currentIdentity(c); err != nil {
			return err
		}

		svc, err := h.decode(c, kind)
		if err != nil {
			return badRequest(c, err)
		}

		created, err := h.service.Create(c.Request().Context(), svc)
		if err != nil {
			return err
		}

		metrics.CatalogMutationsTotal.WithLabelValues(string(kind), "create").Inc()
		return c.JSON(http.StatusCreated, toServiceResponse(created))
	}
}

// Update handles PUT /api/admin/<kind>-services/:id.
func (h *CatalogHandler) Update(kind domain.ServiceKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := currentIdentity(c); err != nil {
			return err
		}

		svc, err := h.decode(c, kind)
		if err != nil {
			return badRequest(c, err)
		}
		svc.ID = c.Param("id")

		updated, err := h.service.Update(c.Request().Context(), svc)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			}
			return err
		}

		metrics.CatalogMutationsTotal.WithLabelValues(string(kind), "update").Inc()
		return c.JSON(http.StatusOK, toServiceResponse(updated))
	}
}

// Delete handles DELETE /api/admin/<kind>-services/:id.
func (h *CatalogHandler) Delete(kind domain.ServiceKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := currentIdentity(c); err != nil {
			return err
		}

		if err := h.service.Delete(c.Request().Context(), kind, c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			}
			return err
		}

		metrics.CatalogMutationsTotal.WithLabelValues(string(kind), "delete").Inc()
		return c.JSON(http.StatusOK, messageResponse{Message: "service deleted successfully"})
	}
}

// Counts handles GET /api/admin/service-counts for the dashboard.
func (h *CatalogHandler) Counts(c echo.Context) error {
	counts, err := h.service.Counts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countsResponse{
		MindfulnessServices: counts[domain.KindMindfulness],
		CounsellingServices: counts[domain.KindCounselling],
		BeyondWordsServices: counts[domain.KindBeyondWords],
		CorporateServices:   counts[domain.KindCorporate],
	})
}

// decode binds and validates the kind-specific request shape.
func (h *CatalogHandler) decode(c echo.Context, kind domain.ServiceKind) (*domain.Service, error) {
	switch kind {
	case domain.KindBeyondWords:
		var req beyondWordsServiceRequest
		if err := c.Bind(&req); err != nil {
			return nil, errInvalidPayload
		}
		if err := c.Validate(&req); err != nil {
			return nil, err
		}
		return req.toDomain(), nil
	case domain.KindCorporate:
		var req corporateServiceRequest
		if err := c.Bind(&req); err != nil {
			return nil, errInvalidPayload
		}
		if err := c.Validate(&req); err != nil {
			return nil, err
		}
		return req.toDomain(), nil
	default: // mindfulness and counselling share a shape
		var req coreServiceRequest
		if err := c.Bind(&req); err != nil {
			return nil, errInvalidPayload
		}
		if err := c.Validate(&req); err != nil {
			return nil, err
		}
		return req.toDomain(kind), nil
	}
}
