package domain

import "errors"

var ErrDocumentNotFound = errors.New("document not found")
var ErrValidation = errors.New("missing required field")
var ErrStorageUnavailable = errors.New("storage unavailable")

// Document is a tracked administrative record (leave request, report, ...).
// Archivo references a filename only, never file content.
type Document struct {
	ID                 int    `json:"id"`
	TipoDocumento      string `json:"tipoDocumento"`
	Descripcion        string `json:"descripcion"`
	Estado             string `json:"estado"`
	FechaRecepcion     string `json:"fechaRecepcion"`
	MesCorrespondiente string `json:"mesCorrespondiente"`
	Archivo            string `json:"archivo"`
}

// DocumentFilter narrows a document listing. Empty fields are not applied;
// provided fields are combined with AND semantics.
type DocumentFilter struct {
	TipoDocumento      string
	MesCorrespondiente string
	Estado             string
}

// Matches reports whether the document satisfies every provided predicate.
func (f DocumentFilter) Matches(d Document) bool {
	if f.TipoDocumento != "" && d.TipoDocumento != f.TipoDocumento {
		return false
	}
	if f.MesCorrespondiente != "" && d.MesCorrespondiente != f.MesCorrespondiente {
		return false
	}
	if f.Estado != "" && d.Estado != f.Estado {
		return false
	}
	return true
}
