package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatchDTO lote histórico de compra de un producto.
type StockBatchDTO struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int64           `json:"stock" validate:"min=0"`
	MinStockLevel int64           `json:"min_stock_level" validate:"min=0"`
	Supplier      string          `json:"supplier"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	Stock         *int64           `json:"stock"`
	MinStockLevel *int64           `json:"min_stock_level"`
	Supplier      *string          `json:"supplier"`
}

// AddBatchRequest entrada para registrar un lote de compra en un producto.
// Suma la cantidad al stock y queda en el historial de costos de valuación.
type AddBatchRequest struct {
	Date     *time.Time      `json:"date"`
	Quantity int64           `json:"quantity" validate:"required,min=1"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	Supplier      string          `json:"supplier"`
	LowStock      bool            `json:"low_stock"`
	Batches       []StockBatchDTO `json:"batches,omitempty"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
