package ports

import (
	"context"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// DocumentUpdate names the fields a partial update may change. A nil field is
// left untouched; a non-nil field is written even when it points at "".
type DocumentUpdate struct {
	TipoDocumento      *string
	Descripcion        *string
	Estado             *string
	FechaRecepcion     *string
	MesCorrespondiente *string
	Archivo            *string
}

// DocumentRepository defines the persistence interface for documents.
type DocumentRepository interface {
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	Create(ctx context.Context, doc domain.Document) (*domain.Document, error)
	Update(ctx context.Context, id int, update DocumentUpdate) (*domain.Document, error)
	Delete(ctx context.Context, id int) error
}
