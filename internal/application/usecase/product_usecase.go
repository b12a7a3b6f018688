package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos más el registro
// de lotes de compra (historial de costos para la valuación).
type ProductUseCase struct {
	store repository.DataStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.DataStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve los productos, opcionalmente filtrados por categoría y por
// término de búsqueda (nombre o SKU, sin distinción de mayúsculas).
func (uc *ProductUseCase) List(category, search string) dto.ProductListResponse {
	data := uc.store.View()
	term := strings.ToLower(search)

	items := make([]dto.ProductResponse, 0, len(data.Products))
	for _, p := range data.Products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) {
			continue
		}
		items = append(items, toProductResponse(p))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, ok := uc.store.View().FindProduct(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// LowStock devuelve los productos en o por debajo de su nivel mínimo.
func (uc *ProductUseCase) LowStock() dto.ProductListResponse {
	data := uc.store.View()
	items := make([]dto.ProductResponse, 0)
	for _, p := range data.Products {
		if p.IsLowStock() {
			items = append(items, toProductResponse(p))
		}
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

// Create registra un producto nuevo. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}

	product := entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		Price:         in.Price,
		Cost:          in.Cost,
		Stock:         in.Stock,
		MinStockLevel: in.MinStockLevel,
		Supplier:      in.Supplier,
	}

	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		for _, p := range data.Products {
			if strings.EqualFold(p.SKU, in.SKU) {
				return data, domain.ErrDuplicate
			}
		}
		return data.AddProduct(product), nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update actualiza un producto (parcial). No toca los lotes registrados.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated entity.Product
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		p, ok := data.FindProduct(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Cost != nil {
			p.Cost = *in.Cost
		}
		if in.Stock != nil {
			if *in.Stock < 0 {
				return data, domain.ErrInvalidInput
			}
			p.Stock = *in.Stock
		}
		if in.MinStockLevel != nil {
			p.MinStockLevel = *in.MinStockLevel
		}
		if in.Supplier != nil {
			p.Supplier = *in.Supplier
		}
		updated = p
		return data.WithProduct(p), nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(updated)
	return &out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		if _, ok := data.FindProduct(id); !ok {
			return data, domain.ErrNotFound
		}
		return data.WithoutProduct(id), nil
	})
}

// AddBatch registra un lote de compra: suma la cantidad al stock y agrega el
// lote al historial de costos. El lote es inmutable una vez registrado.
func (uc *ProductUseCase) AddBatch(id string, in dto.AddBatchRequest, asOf time.Time) (*dto.ProductResponse, error) {
	if in.Quantity <= 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date := asOf
	if in.Date != nil {
		date = *in.Date
	}

	var updated entity.Product
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		p, ok := data.FindProduct(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		batch := entity.StockBatch{
			ID:       uuid.New().String(),
			Date:     date,
			Quantity: in.Quantity,
			UnitCost: in.UnitCost,
		}
		// Colección nueva: el producto anterior conserva sus lotes intactos.
		p.Batches = append(append([]entity.StockBatch{}, p.Batches...), batch)
		p.Stock += in.Quantity
		updated = p
		return data.WithProduct(p), nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(updated)
	return &out, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	batches := make([]dto.StockBatchDTO, 0, len(p.Batches))
	for _, b := range p.Batches {
		batches = append(batches, dto.StockBatchDTO{
			ID: b.ID, Date: b.Date, Quantity: b.Quantity, UnitCost: b.UnitCost,
		})
	}
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		Price:         p.Price,
		Cost:          p.Cost,
		Stock:         p.Stock,
		MinStockLevel: p.MinStockLevel,
		Supplier:      p.Supplier,
		LowStock:      p.IsLowStock(),
		Batches:       batches,
	}
}
