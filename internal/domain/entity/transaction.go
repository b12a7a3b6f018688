package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionSale     = "Sale"
	TransactionExpense  = "Expense"
	TransactionPurchase = "Purchase"
)

// Modos de pago aceptados por la tienda.
const (
	PaymentModeCash   = "Cash"
	PaymentModeCard   = "Card"
	PaymentModeUPI    = "UPI"
	PaymentModeCredit = "Credit"
)

// Estados de una transacción.
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
)

// Categorías de gasto predefinidas. CategoryInventoryPurchase es la que usa
// el libro de proveedores al registrar un pago.
const (
	CategoryInventoryPurchase = "Inventory Purchase"
	CategoryOperational       = "Operational"
)

// ValidPaymentMode indica si el modo de pago es uno de los soportados.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeCredit:
		return true
	}
	return false
}

// Transaction es un asiento de la bitácora financiera (append-only: las
// transacciones nunca se editan ni se borran, solo se agregan).
type Transaction struct {
	ID          string
	Date        time.Time
	Type        string // Sale, Expense, Purchase
	Amount      decimal.Decimal
	Description string
	PaymentMode string
	PartyName   string // cliente o proveedor
	Category    string
	Status      string // Completed, Pending
	ReceiptURL  string // recibo asociado, si existe
}
