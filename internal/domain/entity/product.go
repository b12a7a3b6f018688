package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch representa una entrada histórica de stock (lote de compra).
// Inmutable una vez registrado: Quantity es la cantidad recibida
// originalmente, no un remanente; el consumo se calcula bajo demanda en el
// motor de valuación, nunca se persiste de vuelta en el lote.
type StockBatch struct {
	ID       string
	Date     time.Time // fecha de adquisición
	Quantity int64
	UnitCost decimal.Decimal
}

// Product representa un producto o SKU del catálogo de la tienda.
// Stock es la única fuente de verdad de unidades restantes; Batches es un
// historial de costos y no está obligado a sumar lo mismo que Stock (puede
// haber stock anterior al primer lote registrado).
type Product struct {
	ID            string
	Name          string
	SKU           string
	Category      string
	Price         decimal.Decimal // precio de venta
	Cost          decimal.Decimal // costo unitario plano (fallback de valuación)
	Stock         int64
	MinStockLevel int64
	Supplier      string
	Batches       []StockBatch
}

// IsLowStock indica si el producto está en o por debajo de su nivel mínimo.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStockLevel
}
