package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/api/metrics"
	"github.com/infinitechange/coaching-site/internal/api/session"
	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
	"github.com/infinitechange/coaching-site/internal/core/token"
)

// AuthHandler implements login, logout and current-user lookup.
type AuthHandler struct {
	auth     ports.AuthService
	sessions *session.Manager
	codec    *token.Codec
}

func NewAuthHandler(auth ports.AuthService, sessions *session.Manager, codec *token.Codec) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, codec: codec}
}

// Login authenticates {email, password} and sets the session cookie.
// Every credential failure returns the same 401 body; the caller cannot
// tell an unknown email from a wrong password.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	signed, identity, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		}
		return err
	}

	h.sessions.Attach(c, signed)
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    toUserResponse(identity),
	})
}

// Logout clears the session cookie. Idempotent: logging out twice is fine.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Detach(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// Me returns the identity encoded in the ambient session token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity := h.codec.Verify(session.Extract(c))
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, meResponse{User: toUserResponse(identity)})
}

func toUserResponse(id *domain.Identity) userResponse {
	return userResponse{
		ID:    id.ID,
		Email: id.Email,
		Name:  id.Name,
		Role:  string(id.Role),
		Image: id.Image,
	}
}
