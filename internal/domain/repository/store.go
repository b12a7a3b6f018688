// Package repository define los puertos de acceso a datos del dominio (DIP).
package repository

import "github.com/jhoicas/retailpilot-api/internal/domain/entity"

// Dataset es una instantánea de todas las colecciones de la tienda. Se trata
// como inmutable: la mutación se expresa calculando la nueva colección y
// reemplazando la anterior (copy-on-write a nivel de colección), nunca
// editando in situ. Así dos operaciones lógicas no pueden intercalar estado
// parcial.
type Dataset struct {
	Products     []entity.Product
	Suppliers    []entity.Supplier
	Transactions []entity.Transaction // bitácora append-only, más reciente primero
	Customers    []entity.Customer
	Leads        []entity.Lead
	Tasks        []entity.CRMTask
	Documents    []entity.Document
}

// DataStore es el puerto del almacén de estado del dashboard.
//
// View devuelve la instantánea vigente. Apply calcula un nuevo Dataset a
// partir del actual y lo publica de forma atómica; si fn devuelve error no se
// publica nada y el estado queda intacto.
type DataStore interface {
	View() Dataset
	Apply(fn func(Dataset) (Dataset, error)) error
}

// FindProduct busca un producto por ID en la instantánea.
func (d Dataset) FindProduct(id string) (entity.Product, bool) {
	for _, p := range d.Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// FindSupplier busca un proveedor por ID en la instantánea.
func (d Dataset) FindSupplier(id string) (entity.Supplier, bool) {
	for _, s := range d.Suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return entity.Supplier{}, false
}

// FindCustomer busca un cliente por ID en la instantánea.
func (d Dataset) FindCustomer(id string) (entity.Customer, bool) {
	for _, c := range d.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// FindLead busca un lead por ID en la instantánea.
func (d Dataset) FindLead(id string) (entity.Lead, bool) {
	for _, l := range d.Leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// FindTask busca una tarea por ID en la instantánea.
func (d Dataset) FindTask(id string) (entity.CRMTask, bool) {
	for _, t := range d.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return entity.CRMTask{}, false
}

// FindDocument busca un documento por ID en la instantánea.
func (d Dataset) FindDocument(id string) (entity.Document, bool) {
	for _, doc := range d.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return entity.Document{}, false
}
