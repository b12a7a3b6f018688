package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// HealthSnapshot resumen financiero que se envía al modelo para generar la
// narrativa de salud del negocio. Se calcula en la capa de aplicación; el
// adaptador solo lo formatea en el prompt.
type HealthSnapshot struct {
	Revenue       decimal.Decimal
	Expenses      decimal.Decimal
	NetProfit     decimal.Decimal
	SaleCount     int
	LowStockItems []string
}

// ReceiptData datos extraídos de la imagen de un recibo.
type ReceiptData struct {
	Merchant string
	Date     string // YYYY-MM-DD cuando el modelo puede normalizarla
	Total    decimal.Decimal
	Items    []string
}

// LLMService define el puerto de salida hacia los servicios de inteligencia
// artificial. Cualquier adaptador (Gemini, Anthropic, mock) debe implementar
// esta interfaz. La aplicación solo conoce este contrato, no la
// implementación concreta; el contexto debe llevar timeout para evitar
// bloqueos en llamadas externas. Ambas operaciones devuelven error
// recuperable: nunca tumban al caller.
type LLMService interface {
	// SummarizeBusinessHealth genera un resumen ejecutivo breve (3 puntos)
	// de la salud del negocio a partir del snapshot financiero.
	SummarizeBusinessHealth(ctx context.Context, snap HealthSnapshot) (string, error)

	// ExtractReceipt analiza la imagen de un recibo y extrae comercio,
	// fecha, total y artículos principales.
	ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*ReceiptData, error)
}
