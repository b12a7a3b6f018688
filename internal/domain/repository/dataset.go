package repository

import "github.com/jhoicas/retailpilot-api/internal/domain/entity"

// Helpers copy-on-write del Dataset: cada uno devuelve una instantánea nueva
// con la colección correspondiente reconstruida. El Dataset original queda
// intacto.

// WithProduct reemplaza el producto con el mismo ID.
func (d Dataset) WithProduct(updated entity.Product) Dataset {
	out := d
	out.Products = make([]entity.Product, len(d.Products))
	for i, p := range d.Products {
		if p.ID == updated.ID {
			out.Products[i] = updated
		} else {
			out.Products[i] = p
		}
	}
	return out
}

// AddProduct antepone el producto nuevo (los listados muestran lo más
// reciente primero).
func (d Dataset) AddProduct(p entity.Product) Dataset {
	out := d
	out.Products = append([]entity.Product{p}, d.Products...)
	return out
}

// WithoutProduct elimina el producto por ID.
func (d Dataset) WithoutProduct(id string) Dataset {
	out := d
	out.Products = make([]entity.Product, 0, len(d.Products))
	for _, p := range d.Products {
		if p.ID != id {
			out.Products = append(out.Products, p)
		}
	}
	return out
}

// WithSupplier reemplaza el proveedor con el mismo ID.
func (d Dataset) WithSupplier(updated entity.Supplier) Dataset {
	out := d
	out.Suppliers = make([]entity.Supplier, len(d.Suppliers))
	for i, s := range d.Suppliers {
		if s.ID == updated.ID {
			out.Suppliers[i] = updated
		} else {
			out.Suppliers[i] = s
		}
	}
	return out
}

// AddSupplier agrega un proveedor al final de la colección.
func (d Dataset) AddSupplier(s entity.Supplier) Dataset {
	out := d
	out.Suppliers = append(append([]entity.Supplier{}, d.Suppliers...), s)
	return out
}

// WithoutSupplier elimina el proveedor por ID.
func (d Dataset) WithoutSupplier(id string) Dataset {
	out := d
	out.Suppliers = make([]entity.Supplier, 0, len(d.Suppliers))
	for _, s := range d.Suppliers {
		if s.ID != id {
			out.Suppliers = append(out.Suppliers, s)
		}
	}
	return out
}

// AddTransaction antepone la transacción a la bitácora (append-only: nunca se
// edita ni se elimina una transacción existente).
func (d Dataset) AddTransaction(tx entity.Transaction) Dataset {
	out := d
	out.Transactions = append([]entity.Transaction{tx}, d.Transactions...)
	return out
}

// WithCustomer reemplaza el cliente con el mismo ID.
func (d Dataset) WithCustomer(updated entity.Customer) Dataset {
	out := d
	out.Customers = make([]entity.Customer, len(d.Customers))
	for i, c := range d.Customers {
		if c.ID == updated.ID {
			out.Customers[i] = updated
		} else {
			out.Customers[i] = c
		}
	}
	return out
}

// AddCustomer agrega un cliente al final de la colección.
func (d Dataset) AddCustomer(c entity.Customer) Dataset {
	out := d
	out.Customers = append(append([]entity.Customer{}, d.Customers...), c)
	return out
}

// WithoutCustomer elimina el cliente por ID.
func (d Dataset) WithoutCustomer(id string) Dataset {
	out := d
	out.Customers = make([]entity.Customer, 0, len(d.Customers))
	for _, c := range d.Customers {
		if c.ID != id {
			out.Customers = append(out.Customers, c)
		}
	}
	return out
}

// WithLead reemplaza el lead con el mismo ID.
func (d Dataset) WithLead(updated entity.Lead) Dataset {
	out := d
	out.Leads = make([]entity.Lead, len(d.Leads))
	for i, l := range d.Leads {
		if l.ID == updated.ID {
			out.Leads[i] = updated
		} else {
			out.Leads[i] = l
		}
	}
	return out
}

// AddLead agrega un lead al final de la colección.
func (d Dataset) AddLead(l entity.Lead) Dataset {
	out := d
	out.Leads = append(append([]entity.Lead{}, d.Leads...), l)
	return out
}

// WithoutLead elimina el lead por ID.
func (d Dataset) WithoutLead(id string) Dataset {
	out := d
	out.Leads = make([]entity.Lead, 0, len(d.Leads))
	for _, l := range d.Leads {
		if l.ID != id {
			out.Leads = append(out.Leads, l)
		}
	}
	return out
}

// WithTask reemplaza la tarea con el mismo ID.
func (d Dataset) WithTask(updated entity.CRMTask) Dataset {
	out := d
	out.Tasks = make([]entity.CRMTask, len(d.Tasks))
	for i, t := range d.Tasks {
		if t.ID == updated.ID {
			out.Tasks[i] = updated
		} else {
			out.Tasks[i] = t
		}
	}
	return out
}

// AddTask agrega una tarea al final de la colección.
func (d Dataset) AddTask(t entity.CRMTask) Dataset {
	out := d
	out.Tasks = append(append([]entity.CRMTask{}, d.Tasks...), t)
	return out
}

// WithDocument reemplaza el documento con el mismo ID.
func (d Dataset) WithDocument(updated entity.Document) Dataset {
	out := d
	out.Documents = make([]entity.Document, len(d.Documents))
	for i, doc := range d.Documents {
		if doc.ID == updated.ID {
			out.Documents[i] = updated
		} else {
			out.Documents[i] = doc
		}
	}
	return out
}

// AddDocument agrega un documento al final de la colección.
func (d Dataset) AddDocument(doc entity.Document) Dataset {
	out := d
	out.Documents = append(append([]entity.Document{}, d.Documents...), doc)
	return out
}

// WithoutDocument elimina el documento por ID.
func (d Dataset) WithoutDocument(id string) Dataset {
	out := d
	out.Documents = make([]entity.Document, 0, len(d.Documents))
	for _, doc := range d.Documents {
		if doc.ID != id {
			out.Documents = append(out.Documents, doc)
		}
	}
	return out
}
