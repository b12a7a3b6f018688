package dto

import "github.com/shopspring/decimal"

// BusinessInsightResponse narrativa de salud del negocio generada por IA.
// Generated indica si el texto vino del modelo o es el mensaje de respaldo
// local (el endpoint nunca falla por una caída del servicio de IA).
type BusinessInsightResponse struct {
	Narrative     string          `json:"narrative"`
	Generated     bool            `json:"generated"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	SaleCount     int             `json:"sale_count"`
	LowStockItems []string        `json:"low_stock_items"`
}

// ReceiptScanResponse resultado del escaneo de un recibo: los datos extraídos
// por el modelo y la transacción de gasto creada a partir de ellos.
type ReceiptScanResponse struct {
	Merchant    string              `json:"merchant"`
	Date        string              `json:"date"`
	Total       decimal.Decimal     `json:"total"`
	Items       []string            `json:"items"`
	Transaction TransactionResponse `json:"transaction"`
}
