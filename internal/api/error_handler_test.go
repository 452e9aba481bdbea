package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest, "Todos los campos son obligatorios."},
		{"document not found", domain.ErrDocumentNotFound, http.StatusNotFound, "Documento no encontrado."},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "Usuario no encontrado."},
		{"no users for cargo", domain.ErrNoUsersForCargo, http.StatusNotFound, "No se encontraron usuarios con ese cargo."},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Clave incorrecta."},
		{"storage unavailable", domain.ErrStorageUnavailable, http.StatusInternalServerError, "Error interno del servidor."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := runErrorHandler(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMessage {
				t.Fatalf("expected %q, got %q", tc.wantMessage, msg)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("update document 3: %w", domain.ErrDocumentNotFound)
	code, msg := runErrorHandler(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", code)
	}
	if msg != "Documento no encontrado." {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if msg != "Not Found" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := runErrorHandler(t, errors.New("disk on fire"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Error interno del servidor." {
		t.Fatalf("internal details must not leak: %q", msg)
	}
}
