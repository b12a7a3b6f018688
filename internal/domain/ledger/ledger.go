// Package ledger implementa el libro de proveedores: registro de facturas,
// aplicación de pagos con su gasto asociado y selección de recordatorios de
// pago por proximidad de vencimiento.
//
// Todas las operaciones reciben y devuelven valores: nunca mutan el proveedor
// recibido. El caller reemplaza su colección con el valor devuelto
// (copy-on-write a nivel de colección). El instante "ahora" siempre entra
// como parámetro asOf para mantener la lógica determinista.
package ledger

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
)

// reminderWindowDays es el horizonte del recordatorio: facturas vencidas o
// por vencer dentro de los próximos 7 días.
const reminderWindowDays = 7

// BillInput entrada validada para registrar una factura de proveedor.
type BillInput struct {
	Amount  decimal.Decimal
	DueDate *time.Time // nil conserva la fecha de vencimiento actual
}

// AddBill suma una factura al saldo del proveedor y devuelve la copia
// actualizada. Un monto no positivo se rechaza con ErrInvalidInput sin tocar
// el estado. DueDate solo reemplaza la fecha existente cuando viene informada.
func AddBill(s entity.Supplier, in BillInput) (entity.Supplier, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return s, domain.ErrInvalidInput
	}
	out := s
	out.BalanceDue = s.BalanceDue.Add(in.Amount)
	if in.DueDate != nil {
		d := *in.DueDate
		out.DueDate = &d
	}
	return out, nil
}

// PaymentInput entrada validada para aplicar un pago a un proveedor.
type PaymentInput struct {
	Amount decimal.Decimal
	Mode   string    // modo de pago de la transacción emitida
	AsOf   time.Time // instante del pago
}

// RecordPayment aplica un pago al saldo del proveedor y emite exactamente una
// transacción de gasto (categoría "Inventory Purchase", PartyName = nombre
// del proveedor). Montos no positivos se rechazan con ErrInvalidInput y
// montos mayores al saldo con ErrInsufficientBalance, en ambos casos sin
// mutar nada ni emitir transacción. El piso max(0, saldo−monto) solo cubre
// residuos de precisión; exceder el saldo es un error del caller, no se
// acepta en silencio.
func RecordPayment(s entity.Supplier, in PaymentInput) (entity.Supplier, entity.Transaction, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return s, entity.Transaction{}, domain.ErrInvalidInput
	}
	if in.Amount.GreaterThan(s.BalanceDue) {
		return s, entity.Transaction{}, domain.ErrInsufficientBalance
	}

	out := s
	out.BalanceDue = decimal.Max(decimal.Zero, s.BalanceDue.Sub(in.Amount))
	paidAt := in.AsOf
	out.LastPaymentDate = &paidAt

	tx := entity.Transaction{
		ID:          uuid.New().String(),
		Date:        in.AsOf,
		Type:        entity.TransactionExpense,
		Amount:      in.Amount,
		Description: "Payment to " + s.Name,
		PaymentMode: in.Mode,
		PartyName:   s.Name,
		Category:    entity.CategoryInventoryPurchase,
		Status:      entity.StatusCompleted,
	}
	return out, tx, nil
}

// DaysUntilDue devuelve los días entre asOf y el vencimiento, con redondeo
// hacia arriba. Negativo si la factura ya venció.
func DaysUntilDue(due, asOf time.Time) int {
	return int(math.Ceil(due.Sub(asOf).Hours() / 24))
}

// NeedsReminder indica si el proveedor requiere recordatorio de pago: tiene
// fecha de vencimiento, saldo pendiente, y vence dentro de la ventana de 7
// días (las vencidas dan días negativos y califican naturalmente). Sin
// vencimiento o con saldo cero nunca califica, sin importar la antigüedad.
func NeedsReminder(s entity.Supplier, asOf time.Time) bool {
	if s.DueDate == nil || !s.BalanceDue.GreaterThan(decimal.Zero) {
		return false
	}
	return DaysUntilDue(*s.DueDate, asOf) <= reminderWindowDays
}

// NeedingReminder filtra los proveedores que requieren recordatorio,
// conservando el orden de entrada.
func NeedingReminder(suppliers []entity.Supplier, asOf time.Time) []entity.Supplier {
	out := make([]entity.Supplier, 0)
	for _, s := range suppliers {
		if NeedsReminder(s, asOf) {
			out = append(out, s)
		}
	}
	return out
}

// IsOverdue indica si el proveedor tiene una factura vencida con saldo
// pendiente.
func IsOverdue(s entity.Supplier, asOf time.Time) bool {
	return s.DueDate != nil && s.DueDate.Before(asOf) && s.BalanceDue.GreaterThan(decimal.Zero)
}
