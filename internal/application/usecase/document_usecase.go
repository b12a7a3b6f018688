package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// DocumentUseCase casos de uso del archivo documental. Solo metadatos y
// versionado: no hay almacenamiento real de archivos.
type DocumentUseCase struct {
	store repository.DataStore
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(store repository.DataStore) *DocumentUseCase {
	return &DocumentUseCase{store: store}
}

// List devuelve todos los documentos con su historial de versiones.
func (uc *DocumentUseCase) List() dto.DocumentListResponse {
	data := uc.store.View()
	items := make([]dto.DocumentResponse, 0, len(data.Documents))
	for _, d := range data.Documents {
		items = append(items, toDocumentResponse(d))
	}
	return dto.DocumentListResponse{Items: items, Total: len(items)}
}

// Create registra un documento con su versión inicial.
func (uc *DocumentUseCase) Create(in dto.CreateDocumentRequest, asOf time.Time) (*dto.DocumentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.DocumentInvoice, entity.DocumentContract, entity.DocumentManual, entity.DocumentOther:
	default:
		return nil, domain.ErrInvalidInput
	}

	doc := entity.Document{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Type:         in.Type,
		DateUploaded: asOf,
		Size:         in.Size,
		URL:          in.URL,
		Versions: []entity.DocumentVersion{{
			ID:           uuid.New().String(),
			Version:      1,
			DateUploaded: asOf,
			Size:         in.Size,
			URL:          in.URL,
			Note:         "Initial upload",
		}},
	}
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddDocument(doc), nil
	})
	if err != nil {
		return nil, err
	}
	out := toDocumentResponse(doc)
	return &out, nil
}

// AddVersion agrega una versión nueva al documento y actualiza los campos de
// nivel superior para reflejarla.
func (uc *DocumentUseCase) AddVersion(id string, in dto.AddVersionRequest, asOf time.Time) (*dto.DocumentResponse, error) {
	var updated entity.Document
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		doc, ok := data.FindDocument(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		version := entity.DocumentVersion{
			ID:           uuid.New().String(),
			Version:      doc.LatestVersion() + 1,
			DateUploaded: asOf,
			Size:         in.Size,
			URL:          in.URL,
			Note:         in.Note,
		}
		// Colección de versiones nueva: el documento anterior queda intacto.
		doc.Versions = append(append([]entity.DocumentVersion{}, doc.Versions...), version)
		doc.DateUploaded = asOf
		doc.Size = in.Size
		doc.URL = in.URL
		updated = doc
		return data.WithDocument(doc), nil
	})
	if err != nil {
		return nil, err
	}
	out := toDocumentResponse(updated)
	return &out, nil
}

// Delete elimina un documento y todo su historial de versiones.
func (uc *DocumentUseCase) Delete(id string) error {
	return uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		if _, ok := data.FindDocument(id); !ok {
			return data, domain.ErrNotFound
		}
		return data.WithoutDocument(id), nil
	})
}

func toDocumentResponse(d entity.Document) dto.DocumentResponse {
	versions := make([]dto.DocumentVersionDTO, 0, len(d.Versions))
	for _, v := range d.Versions {
		versions = append(versions, dto.DocumentVersionDTO{
			ID:           v.ID,
			Version:      v.Version,
			DateUploaded: v.DateUploaded,
			Size:         v.Size,
			URL:          v.URL,
			Note:         v.Note,
		})
	}
	return dto.DocumentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Type:         d.Type,
		DateUploaded: d.DateUploaded,
		Size:         d.Size,
		URL:          d.URL,
		Versions:     versions,
	}
}
