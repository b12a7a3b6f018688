package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para registrar un proveedor (saldo inicia en 0).
type CreateSupplierRequest struct {
	Name    string     `json:"name" validate:"required,min=1,max=200"`
	Contact string     `json:"contact"`
	Email   string     `json:"email" validate:"omitempty,email"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateSupplierRequest entrada para actualizar los datos de contacto de un
// proveedor. El saldo no se edita directamente: solo facturas y pagos.
type UpdateSupplierRequest struct {
	Name    *string    `json:"name"`
	Contact *string    `json:"contact"`
	Email   *string    `json:"email"`
	DueDate *time.Time `json:"due_date"`
}

// AddBillRequest entrada para registrar una factura de proveedor.
type AddBillRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	DueDate     *time.Time      `json:"due_date"`
	Description string          `json:"description"`
}

// RecordPaymentRequest entrada para registrar un pago a proveedor.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Mode   string          `json:"mode" validate:"required,oneof=Cash Card UPI Credit"`
}

// SupplierResponse salida de un proveedor con sus indicadores de vencimiento
// calculados contra el asOf de la petición.
type SupplierResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Contact         string          `json:"contact"`
	Email           string          `json:"email"`
	BalanceDue      decimal.Decimal `json:"balance_due"`
	LastPaymentDate *time.Time      `json:"last_payment_date,omitempty"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Overdue         bool            `json:"overdue"`
	DaysUntilDue    *int            `json:"days_until_due,omitempty"`
	NeedsReminder   bool            `json:"needs_reminder"`
}

// SupplierListResponse lista de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}

// PaymentResponse resultado de un pago: proveedor actualizado y la
// transacción de gasto emitida.
type PaymentResponse struct {
	Supplier    SupplierResponse    `json:"supplier"`
	Transaction TransactionResponse `json:"transaction"`
}

// ReminderListResponse proveedores dentro de la ventana de recordatorio.
type ReminderListResponse struct {
	Items []SupplierResponse `json:"items"`
	AsOf  time.Time          `json:"as_of"`
}

// SendRemindersResponse resultado del envío masivo de recordatorios.
type SendRemindersResponse struct {
	Sent      int      `json:"sent"`
	Suppliers []string `json:"suppliers"`
}
