package dto

import "time"

// CreateDocumentRequest entrada para registrar un documento (versión 1).
// Solo metadatos: el contenido del archivo no se almacena.
type CreateDocumentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Type string `json:"type" validate:"required,oneof=Invoice Contract Manual Other"`
	Size string `json:"size"`
	URL  string `json:"url"`
}

// AddVersionRequest registra una nueva versión de un documento existente.
type AddVersionRequest struct {
	Size string `json:"size"`
	URL  string `json:"url"`
	Note string `json:"note"`
}

// DocumentVersionDTO versión histórica de un documento.
type DocumentVersionDTO struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	DateUploaded time.Time `json:"date_uploaded"`
	Size         string    `json:"size"`
	URL          string    `json:"url,omitempty"`
	Note         string    `json:"note,omitempty"`
}

// DocumentResponse salida de un documento; los campos de nivel superior
// reflejan la última versión.
type DocumentResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	DateUploaded time.Time            `json:"date_uploaded"`
	Size         string               `json:"size"`
	URL          string               `json:"url,omitempty"`
	Versions     []DocumentVersionDTO `json:"versions"`
}

// DocumentListResponse lista de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Total int                `json:"total"`
}
