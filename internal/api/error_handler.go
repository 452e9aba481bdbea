package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// wire contract uses a "message" key throughout.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes and wire messages.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Todos los campos son obligatorios."
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "Documento no encontrado."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado."
	case errors.Is(err, domain.ErrNoUsersForCargo):
		return http.StatusNotFound, "No se encontraron usuarios con ese cargo."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Clave incorrecta."
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("storage unavailable")
		return http.StatusInternalServerError, "Error interno del servidor."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor."
}
