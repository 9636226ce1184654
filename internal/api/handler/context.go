package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/middleware"
	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// currentIdentity extracts the identity the route guard verified and stored
// in the request context. The guard runs before every admin handler, so a
// missing identity means the route was wired without it — fail closed.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	id := middleware.Identity(c)
	if id == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
