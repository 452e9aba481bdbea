package jsonfile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

func newDocumentRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	return NewDocumentRepository(newTestStore(t))
}

func sampleDocument() domain.Document {
	return domain.Document{
		TipoDocumento:      "Licencia",
		Descripcion:        "Permiso médico",
		Estado:             "pendiente",
		FechaRecepcion:     "2024-01-10",
		MesCorrespondiente: "Enero",
		Archivo:            "doc1.pdf",
	}
}

func TestDocumentRepository_FirstIDIsOne(t *testing.T) {
	repo := newDocumentRepo(t)

	created, err := repo.Create(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1 on empty collection, got %d", created.ID)
	}
	if created.Descripcion != "Permiso médico" {
		t.Fatalf("fields not echoed: %+v", created)
	}
}

func TestDocumentRepository_IDsNeverReusedAfterDelete(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, sampleDocument()); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	// A gap in the middle must not shrink the next id back into the gap.
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	created, err := repo.Create(ctx, sampleDocument())
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected id 4 (max+1), got %d", created.ID)
	}

	// Collection {1, 3, 4}: ids keep advancing from the live maximum.
	if err := repo.Delete(ctx, 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	created, err = repo.Create(ctx, sampleDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 2 {
		t.Fatalf("expected id 2 (max of {1}+1), got %d", created.ID)
	}
}

func TestDocumentRepository_ListFilterPreservesOrder(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	docs := []domain.Document{
		{TipoDocumento: "Licencia", Descripcion: "a", Estado: "pendiente", FechaRecepcion: "2024-01-10", MesCorrespondiente: "Enero", Archivo: "a.pdf"},
		{TipoDocumento: "Informe", Descripcion: "b", Estado: "aprobado", FechaRecepcion: "2024-01-11", MesCorrespondiente: "Enero", Archivo: "b.pdf"},
		{TipoDocumento: "Licencia", Descripcion: "c", Estado: "pendiente", FechaRecepcion: "2024-02-01", MesCorrespondiente: "Febrero", Archivo: "c.pdf"},
	}
	for _, d := range docs {
		if _, err := repo.Create(ctx, d); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	pendientes, err := repo.List(ctx, domain.DocumentFilter{Estado: "pendiente"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pendientes) != 2 || pendientes[0].Descripcion != "a" || pendientes[1].Descripcion != "c" {
		t.Fatalf("unexpected filtered set: %+v", pendientes)
	}

	// AND semantics across provided fields.
	both, err := repo.List(ctx, domain.DocumentFilter{Estado: "pendiente", MesCorrespondiente: "Enero"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(both) != 1 || both[0].Descripcion != "a" {
		t.Fatalf("unexpected AND result: %+v", both)
	}

	// No filter returns everything.
	all, err := repo.List(ctx, domain.DocumentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}
}

func TestDocumentRepository_UpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	descripcion := "Permiso actualizado"
	merged, err := repo.Update(ctx, created.ID, ports.DocumentUpdate{Descripcion: &descripcion})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if merged.Descripcion != "Permiso actualizado" {
		t.Fatalf("descripcion not updated: %+v", merged)
	}
	if merged.Estado != "pendiente" || merged.Archivo != "doc1.pdf" {
		t.Fatalf("unsupplied fields changed: %+v", merged)
	}

	// A supplied empty string is an explicit clear, not an omission.
	empty := ""
	merged, err = repo.Update(ctx, created.ID, ports.DocumentUpdate{Archivo: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if merged.Archivo != "" {
		t.Fatalf("expected archivo cleared, got %q", merged.Archivo)
	}
}

func TestDocumentRepository_UpdateUnknownID(t *testing.T) {
	repo := newDocumentRepo(t)

	estado := "aprobado"
	if _, err := repo.Update(context.Background(), 42, ports.DocumentUpdate{Estado: &estado}); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentRepository_DeleteTwiceIsNotFound(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDocument())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound on second delete, got %v", err)
	}

	remaining, err := repo.List(ctx, domain.DocumentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty collection, got %+v", remaining)
	}
}

func TestDocumentRepository_ConcurrentCreatesDoNotLoseUpdates(t *testing.T) {
	repo := newDocumentRepo(t)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, sampleDocument()); err != nil {
				t.Errorf("create: %v", err)
			}
		}()
	}
	wg.Wait()

	docs, err := repo.List(ctx, domain.DocumentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != workers {
		t.Fatalf("lost updates: expected %d documents, got %d", workers, len(docs))
	}

	seen := make(map[int]bool, workers)
	for _, d := range docs {
		if seen[d.ID] {
			t.Fatalf("duplicate id %d", d.ID)
		}
		seen[d.ID] = true
	}
}
