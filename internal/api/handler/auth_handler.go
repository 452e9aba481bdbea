package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type authenticateRequest struct {
	Cargo string `json:"cargo"`
	Clave string `json:"clave"`
}

type authenticateResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    domain.UserSummary `json:"user"`
}

// Authenticate verifies cargo/clave and issues a session token.
//
// @Summary      Authenticate a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Solicitud inválida."})
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.Cargo, req.Clave)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cargo y clave son obligatorios."})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Usuario no encontrado."})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Clave incorrecta."})
		}
		return err
	}

	return c.JSON(http.StatusOK, authenticateResponse{
		Message: "Autenticación exitosa.",
		Token:   result.Token,
		User:    result.User,
	})
}
