package handler

import "github.com/gestiondocumental/document-system/internal/core/ports"

// messageResponse is the standard envelope for confirmations and errors.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createDocumentRequest struct {
	TipoDocumento      string `json:"tipoDocumento"      validate:"required"`
	Descripcion        string `json:"descripcion"        validate:"required"`
	Estado             string `json:"estado"             validate:"required"`
	FechaRecepcion     string `json:"fechaRecepcion"     validate:"required"`
	MesCorrespondiente string `json:"mesCorrespondiente" validate:"required"`
	Archivo            string `json:"archivo"            validate:"required"`
}

// updateDocumentRequest carries a partial update. Pointer fields distinguish
// "omitted" (nil, keep stored value) from "set", including set-to-empty.
type updateDocumentRequest struct {
	TipoDocumento      *string `json:"tipoDocumento"`
	Descripcion        *string `json:"descripcion"`
	Estado             *string `json:"estado"`
	FechaRecepcion     *string `json:"fechaRecepcion"`
	MesCorrespondiente *string `json:"mesCorrespondiente"`
	Archivo            *string `json:"archivo"`
}

// --- Request → Service input ---

func toCreateDocumentInput(req createDocumentRequest) ports.CreateDocumentInput {
	return ports.CreateDocumentInput{
		TipoDocumento:      req.TipoDocumento,
		Descripcion:        req.Descripcion,
		Estado:             req.Estado,
		FechaRecepcion:     req.FechaRecepcion,
		MesCorrespondiente: req.MesCorrespondiente,
		Archivo:            req.Archivo,
	}
}

func toDocumentUpdate(req updateDocumentRequest) ports.DocumentUpdate {
	return ports.DocumentUpdate{
		TipoDocumento:      req.TipoDocumento,
		Descripcion:        req.Descripcion,
		Estado:             req.Estado,
		FechaRecepcion:     req.FechaRecepcion,
		MesCorrespondiente: req.MesCorrespondiente,
		Archivo:            req.Archivo,
	}
}
