package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor con su saldo pendiente (cuentas por pagar).
// BalanceDue solo cambia vía AddBill y RecordPayment del libro de proveedores
// y nunca queda negativo. DueDate y LastPaymentDate son opcionales.
type Supplier struct {
	ID              string
	Name            string
	Contact         string
	Email           string
	BalanceDue      decimal.Decimal
	LastPaymentDate *time.Time
	DueDate         *time.Time
}
