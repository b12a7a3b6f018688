package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse asiento de la bitácora financiera.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	PaymentMode string          `json:"payment_mode"`
	PartyName   string          `json:"party_name,omitempty"`
	Category    string          `json:"category,omitempty"`
	Status      string          `json:"status"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}

// TransactionListResponse lista de transacciones, más reciente primero.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// CreateExpenseRequest entrada para registrar un gasto manual.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required,min=1"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category"`
	Date        *time.Time      `json:"date"`
	PaymentMode string          `json:"payment_mode" validate:"required,oneof=Cash Card UPI Credit"`
}

// CategoryAmountDTO total de gasto por categoría.
type CategoryAmountDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FinanceSummaryResponse resumen de caja: ingresos, gastos, neto y la
// distribución del gasto por categoría (ordenada de mayor a menor).
type FinanceSummaryResponse struct {
	TotalIncome       decimal.Decimal     `json:"total_income"`
	TotalExpenses     decimal.Decimal     `json:"total_expenses"`
	Net               decimal.Decimal     `json:"net"`
	ExpenseByCategory []CategoryAmountDTO `json:"expense_by_category"`
}
