package ports

import (
	"context"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// CreateDocumentInput carries all data needed to register a new document.
// Every field is required.
type CreateDocumentInput struct {
	TipoDocumento      string
	Descripcion        string
	Estado             string
	FechaRecepcion     string
	MesCorrespondiente string
	Archivo            string
}

// DocumentService defines use-case operations for documents.
type DocumentService interface {
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	Create(ctx context.Context, input CreateDocumentInput) (*domain.Document, error)
	Update(ctx context.Context, id int, update DocumentUpdate) (*domain.Document, error)
	Delete(ctx context.Context, id int) error
}
