package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

// DocumentHandler handles HTTP requests for document operations.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List handles GET /api/documents with optional exact-match filters.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        tipoDocumento  query     string  false  "Filter by document type"
// @Param        mes            query     string  false  "Filter by mesCorrespondiente"
// @Param        estado         query     string  false  "Filter by estado"
// @Success      200            {array}   domain.Document
// @Failure      500            {object}  map[string]string
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	filter := domain.DocumentFilter{
		TipoDocumento:      c.QueryParam("tipoDocumento"),
		MesCorrespondiente: c.QueryParam("mes"),
		Estado:             c.QueryParam("estado"),
	}

	docs, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Create handles POST /api/documents.
//
// @Summary      Register a new document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body      createDocumentRequest  true  "Document fields"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  map[string]string
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrValidation
	}

	doc, err := h.service.Create(c.Request().Context(), toCreateDocumentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// Update handles PUT /api/documents/:id with a partial payload.
//
// @Summary      Update a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Document id"
// @Param        body  body      updateDocumentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Document
// @Failure      404   {object}  map[string]string
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrDocumentNotFound
	}

	var req updateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}

	doc, err := h.service.Update(c.Request().Context(), id, toDocumentUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/documents/:id.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Param        id  path      int  true  "Document id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrDocumentNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Documento eliminado con éxito."})
}
