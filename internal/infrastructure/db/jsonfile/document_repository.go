package jsonfile

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gestiondocumental/document-system/internal/api/metrics"
	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

const documentsCollection = "documents"

// DocumentRepository persists documents in <data>/documents.json.
type DocumentRepository struct {
	coll *Collection[domain.Document]
}

func NewDocumentRepository(s *Store) *DocumentRepository {
	return &DocumentRepository{coll: NewCollection[domain.Document](s, documentsCollection)}
}

// List returns documents matching the filter, preserving file order.
func (r *DocumentRepository) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(documentsCollection, "load"))
	docs, err := r.coll.Load()
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if filter.Matches(d) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// Create appends the document with a freshly allocated id and persists the
// collection. Ids are max(existing)+1, so gaps left by deletes never cause
// a collision with a live record.
func (r *DocumentRepository) Create(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(documentsCollection, "save"))
	defer timer.ObserveDuration()

	var created domain.Document
	_, err := r.coll.Update(func(docs []domain.Document) ([]domain.Document, error) {
		doc.ID = nextDocumentID(docs)
		created = doc
		return append(docs, doc), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merges the supplied fields into the stored record.
func (r *DocumentRepository) Update(ctx context.Context, id int, update ports.DocumentUpdate) (*domain.Document, error) {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(documentsCollection, "save"))
	defer timer.ObserveDuration()

	var merged domain.Document
	_, err := r.coll.Update(func(docs []domain.Document) ([]domain.Document, error) {
		for i := range docs {
			if docs[i].ID != id {
				continue
			}
			applyDocumentUpdate(&docs[i], update)
			merged = docs[i]
			return docs, nil
		}
		return nil, domain.ErrDocumentNotFound
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the record with the given id.
func (r *DocumentRepository) Delete(ctx context.Context, id int) error {
	timer := prometheus.NewTimer(metrics.StorageOperationDuration.WithLabelValues(documentsCollection, "save"))
	defer timer.ObserveDuration()

	_, err := r.coll.Update(func(docs []domain.Document) ([]domain.Document, error) {
		kept := make([]domain.Document, 0, len(docs))
		for _, d := range docs {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		if len(kept) == len(docs) {
			return nil, domain.ErrDocumentNotFound
		}
		return kept, nil
	})
	return err
}

func nextDocumentID(docs []domain.Document) int {
	next := 1
	for _, d := range docs {
		if d.ID >= next {
			next = d.ID + 1
		}
	}
	return next
}

func applyDocumentUpdate(d *domain.Document, u ports.DocumentUpdate) {
	if u.TipoDocumento != nil {
		d.TipoDocumento = *u.TipoDocumento
	}
	if u.Descripcion != nil {
		d.Descripcion = *u.Descripcion
	}
	if u.Estado != nil {
		d.Estado = *u.Estado
	}
	if u.FechaRecepcion != nil {
		d.FechaRecepcion = *u.FechaRecepcion
	}
	if u.MesCorrespondiente != nil {
		d.MesCorrespondiente = *u.MesCorrespondiente
	}
	if u.Archivo != nil {
		d.Archivo = *u.Archivo
	}
}
