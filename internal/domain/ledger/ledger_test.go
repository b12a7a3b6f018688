package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var asOf = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func supplier(balance string, due *time.Time) entity.Supplier {
	return entity.Supplier{
		ID: "s1", Name: "TechDistro Inc", Email: "accounts@techdistro.com",
		BalanceDue: dec(balance), DueDate: due,
	}
}

func days(n int) *time.Time {
	d := asOf.Add(time.Duration(n) * 24 * time.Hour)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// AddBill
// ──────────────────────────────────────────────────────────────────────────────

func TestAddBill_SumaAlSaldo(t *testing.T) {
	s := supplier("100", nil)
	out, err := ledger.AddBill(s, ledger.BillInput{Amount: dec("50.25")})

	require.NoError(t, err)
	assert.True(t, out.BalanceDue.Equal(dec("150.25")))
	assert.True(t, s.BalanceDue.Equal(dec("100")), "el proveedor original no debe mutar")
}

func TestAddBill_MontoNoPositivo_Rechazado(t *testing.T) {
	s := supplier("100", nil)
	for _, amount := range []string{"0", "-10"} {
		out, err := ledger.AddBill(s, ledger.BillInput{Amount: dec(amount)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s debe rechazarse", amount)
		assert.True(t, out.BalanceDue.Equal(dec("100")), "el saldo debe quedar intacto")
	}
}

func TestAddBill_DueDateSoloReemplazaSiVieneInformada(t *testing.T) {
	existing := days(30)
	s := supplier("0", existing)

	// Sin fecha nueva: conserva la existente.
	out, err := ledger.AddBill(s, ledger.BillInput{Amount: dec("200")})
	require.NoError(t, err)
	require.NotNil(t, out.DueDate)
	assert.True(t, out.DueDate.Equal(*existing))

	// Con fecha nueva: la reemplaza.
	newDue := days(10)
	out, err = ledger.AddBill(s, ledger.BillInput{Amount: dec("200"), DueDate: newDue})
	require.NoError(t, err)
	require.NotNil(t, out.DueDate)
	assert.True(t, out.DueDate.Equal(*newDue))
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordPayment
// ──────────────────────────────────────────────────────────────────────────────

// Ciclo completo: factura de 100 y pago de 100 dejan el saldo exactamente en
// cero y emiten una única transacción de gasto por 100.
func TestRecordPayment_CicloFacturaPago(t *testing.T) {
	s := supplier("0", nil)
	s, err := ledger.AddBill(s, ledger.BillInput{Amount: dec("100")})
	require.NoError(t, err)

	out, tx, err := ledger.RecordPayment(s, ledger.PaymentInput{
		Amount: dec("100"), Mode: entity.PaymentModeCash, AsOf: asOf,
	})
	require.NoError(t, err)

	assert.True(t, out.BalanceDue.IsZero(), "el saldo debe quedar en 0")
	require.NotNil(t, out.LastPaymentDate)
	assert.True(t, out.LastPaymentDate.Equal(asOf))

	assert.Equal(t, entity.TransactionExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("100")))
	assert.Equal(t, entity.CategoryInventoryPurchase, tx.Category)
	assert.Equal(t, "TechDistro Inc", tx.PartyName)
	assert.Equal(t, "Payment to TechDistro Inc", tx.Description)
	assert.Equal(t, entity.StatusCompleted, tx.Status)
	assert.True(t, tx.Date.Equal(asOf))
	assert.NotEmpty(t, tx.ID)
}

func TestRecordPayment_PagoParcial(t *testing.T) {
	s := supplier("450.50", days(5))
	out, _, err := ledger.RecordPayment(s, ledger.PaymentInput{
		Amount: dec("150.50"), Mode: entity.PaymentModeCard, AsOf: asOf,
	})
	require.NoError(t, err)
	assert.True(t, out.BalanceDue.Equal(dec("300")))
}

// Pagar más que el saldo se rechaza sin mutar el proveedor ni emitir
// transacción.
func TestRecordPayment_ExcedeSaldo_RechazadoSinMutar(t *testing.T) {
	s := supplier("100", nil)
	out, tx, err := ledger.RecordPayment(s, ledger.PaymentInput{
		Amount: dec("100.01"), Mode: entity.PaymentModeCash, AsOf: asOf,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.True(t, out.BalanceDue.Equal(dec("100")), "el saldo debe quedar intacto")
	assert.Nil(t, out.LastPaymentDate)
	assert.Empty(t, tx.ID, "no debe emitirse transacción")
}

func TestRecordPayment_MontoNoPositivo_Rechazado(t *testing.T) {
	s := supplier("100", nil)
	_, _, err := ledger.RecordPayment(s, ledger.PaymentInput{
		Amount: dec("0"), Mode: entity.PaymentModeCash, AsOf: asOf,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recordatorios y vencimientos
// ──────────────────────────────────────────────────────────────────────────────

// Ventana de 7 días: due en 3 días califica, en 10 no, vencida hace 5 días
// califica, y saldo cero nunca califica aunque esté vencida.
func TestNeedingReminder_VentanaDeSieteDias(t *testing.T) {
	suppliers := []entity.Supplier{
		{ID: "a", Name: "DueSoon", BalanceDue: dec("50"), DueDate: days(3)},
		{ID: "b", Name: "DueFar", BalanceDue: dec("50"), DueDate: days(10)},
		{ID: "c", Name: "Overdue", BalanceDue: dec("50"), DueDate: days(-5)},
		{ID: "d", Name: "Settled", BalanceDue: dec("0"), DueDate: days(-30)},
		{ID: "e", Name: "NoDueDate", BalanceDue: dec("999")},
	}

	got := ledger.NeedingReminder(suppliers, asOf)
	require.Len(t, got, 2)
	assert.Equal(t, "DueSoon", got[0].Name, "debe conservarse el orden de entrada")
	assert.Equal(t, "Overdue", got[1].Name)
}

func TestNeedsReminder_BordeDeLaVentana(t *testing.T) {
	// Exactamente 7 días: ceil(168h/24) = 7 → califica.
	assert.True(t, ledger.NeedsReminder(supplier("10", days(7)), asOf))
	// 8 días: fuera de la ventana.
	assert.False(t, ledger.NeedsReminder(supplier("10", days(8)), asOf))
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, ledger.IsOverdue(supplier("10", days(-1)), asOf))
	assert.False(t, ledger.IsOverdue(supplier("10", days(1)), asOf))
	assert.False(t, ledger.IsOverdue(supplier("0", days(-10)), asOf), "sin saldo no hay mora")
	assert.False(t, ledger.IsOverdue(supplier("10", nil), asOf), "sin vencimiento no hay mora")
}

func TestDaysUntilDue_RedondeaHaciaArriba(t *testing.T) {
	// 36 horas → ceil(1.5) = 2 días.
	due := asOf.Add(36 * time.Hour)
	assert.Equal(t, 2, ledger.DaysUntilDue(due, asOf))

	// Vencida hace 12 horas → ceil(-0.5) = 0 días.
	past := asOf.Add(-12 * time.Hour)
	assert.Equal(t, 0, ledger.DaysUntilDue(past, asOf))

	// Vencida hace 5 días exactos → -5.
	assert.Equal(t, -5, ledger.DaysUntilDue(asOf.Add(-5*24*time.Hour), asOf))
}
