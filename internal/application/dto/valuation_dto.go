package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationRowDTO valuación de un producto bajo los tres métodos de costeo.
type ValuationRowDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Stock     int64           `json:"stock"`
	BatchQty  int64           `json:"batch_qty"` // unidades cubiertas por lotes registrados
	FIFO      decimal.Decimal `json:"fifo"`
	LIFO      decimal.Decimal `json:"lifo"`
	AVG       decimal.Decimal `json:"avg"`
}

// ValuationReportResponse reporte de valuación de inventario completo.
// Se recalcula en cada petición; no hay caché.
type ValuationReportResponse struct {
	Rows        []ValuationRowDTO `json:"rows"`
	TotalFIFO   decimal.Decimal   `json:"total_fifo"`
	TotalLIFO   decimal.Decimal   `json:"total_lifo"`
	TotalAVG    decimal.Decimal   `json:"total_avg"`
	GeneratedAt time.Time         `json:"generated_at"`
}
