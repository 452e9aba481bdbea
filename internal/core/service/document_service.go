package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gestiondocumental/document-system/internal/api/metrics"
	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

// DocumentService implements document use cases over a DocumentRepository.
type DocumentService struct {
	repo ports.DocumentRepository
	log  zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, log zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, log: log}
}

// List returns the documents matching the filter in stored order.
func (s *DocumentService) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	docs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Create validates that every field is present, then persists the document.
// Validation runs before any storage access, so a rejected request never
// touches the collection.
func (s *DocumentService) Create(ctx context.Context, input ports.CreateDocumentInput) (*domain.Document, error) {
	if input.TipoDocumento == "" || input.Descripcion == "" || input.Estado == "" ||
		input.FechaRecepcion == "" || input.MesCorrespondiente == "" || input.Archivo == "" {
		return nil, domain.ErrValidation
	}

	created, err := s.repo.Create(ctx, domain.Document{
		TipoDocumento:      input.TipoDocumento,
		Descripcion:        input.Descripcion,
		Estado:             input.Estado,
		FechaRecepcion:     input.FechaRecepcion,
		MesCorrespondiente: input.MesCorrespondiente,
		Archivo:            input.Archivo,
	})
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues(created.TipoDocumento).Inc()
	s.log.Info().
		Int("id", created.ID).
		Str("tipo_documento", created.TipoDocumento).
		Msg("document created")

	return created, nil
}

// Update merges the supplied fields into the stored document.
func (s *DocumentService) Update(ctx context.Context, id int, update ports.DocumentUpdate) (*domain.Document, error) {
	merged, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update document %d: %w", id, err)
	}

	s.log.Info().Int("id", id).Msg("document updated")
	return merged, nil
}

// Delete removes the document with the given id.
func (s *DocumentService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}

	metrics.DocumentsDeletedTotal.Inc()
	s.log.Info().Int("id", id).Msg("document deleted")
	return nil
}
