package entity

import "time"

// Tipos de documento del archivo de la tienda.
const (
	DocumentInvoice  = "Invoice"
	DocumentContract = "Contract"
	DocumentManual   = "Manual"
	DocumentOther    = "Other"
)

// DocumentVersion es una versión histórica de un documento. Solo se guardan
// metadatos: no hay almacenamiento real de archivos.
type DocumentVersion struct {
	ID           string
	Version      int
	DateUploaded time.Time
	Size         string
	URL          string
	Note         string
}

// Document representa un documento del negocio con su historial de versiones.
// Los campos de nivel superior reflejan siempre la última versión.
type Document struct {
	ID           string
	Name         string
	Type         string // Invoice, Contract, Manual, Other
	DateUploaded time.Time
	Size         string
	URL          string
	Versions     []DocumentVersion
}

// LatestVersion devuelve la versión más reciente, o cero si no hay versiones.
func (d Document) LatestVersion() int {
	best := 0
	for _, v := range d.Versions {
		if v.Version > best {
			best = v.Version
		}
	}
	return best
}
