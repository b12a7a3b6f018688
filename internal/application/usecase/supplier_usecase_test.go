package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/internal/infrastructure/memory"
	"github.com/jhoicas/retailpilot-api/pkg/logger"
)

func newSupplierFixture(t *testing.T) (*SupplierUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(repository.Dataset{
		Suppliers: []entity.Supplier{
			{ID: "s1", Name: "TechDistro Inc", Email: "accounts@techdistro.com", BalanceDue: decimal.Zero},
		},
	})
	return NewSupplierUseCase(store, logger.Nop()), store
}

// ────────────────────────────────────────────────────────────────────────────
// Factura + pago: ciclo completo
// ────────────────────────────────────────────────────────────────────────────

func TestSupplier_FacturaYPagoCierranEnCero(t *testing.T) {
	uc, store := newSupplierFixture(t)
	asOf := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	due := asOf.AddDate(0, 0, 20)

	billed, err := uc.AddBill("s1", dto.AddBillRequest{
		Amount:  decimal.NewFromInt(500),
		DueDate: &due,
	}, asOf)
	require.NoError(t, err)
	assert.True(t, billed.BalanceDue.Equal(decimal.NewFromInt(500)))
	require.NotNil(t, billed.DueDate)

	paid, err := uc.RecordPayment("s1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(500),
		Mode:   entity.PaymentModeCash,
	}, asOf)
	require.NoError(t, err)
	assert.True(t, paid.Supplier.BalanceDue.IsZero())

	// La transacción de gasto emitida acompaña al pago.
	tx := paid.Transaction
	assert.Equal(t, entity.TransactionExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Payment to TechDistro Inc", tx.Description)
	assert.Equal(t, entity.CategoryInventoryPurchase, tx.Category)
	assert.Equal(t, entity.StatusCompleted, tx.Status)

	// Y quedó publicada en la bitácora en la misma instantánea.
	data := store.View()
	require.Len(t, data.Transactions, 1)
	assert.Equal(t, tx.ID, data.Transactions[0].ID)
}

func TestSupplier_PagoParcialDejaSaldo(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	asOf := time.Now()

	_, err := uc.AddBill("s1", dto.AddBillRequest{Amount: decimal.NewFromInt(300)}, asOf)
	require.NoError(t, err)

	paid, err := uc.RecordPayment("s1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(120),
		Mode:   entity.PaymentModeCard,
	}, asOf)
	require.NoError(t, err)
	assert.True(t, paid.Supplier.BalanceDue.Equal(decimal.NewFromInt(180)))
	require.NotNil(t, paid.Supplier.LastPaymentDate)
}

// ────────────────────────────────────────────────────────────────────────────
// Sobrepago: se rechaza sin tocar el estado
// ────────────────────────────────────────────────────────────────────────────

func TestSupplier_SobrepagoNoMutaNada(t *testing.T) {
	uc, store := newSupplierFixture(t)
	asOf := time.Now()

	_, err := uc.AddBill("s1", dto.AddBillRequest{Amount: decimal.NewFromInt(100)}, asOf)
	require.NoError(t, err)

	_, err = uc.RecordPayment("s1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(150),
		Mode:   entity.PaymentModeCash,
	}, asOf)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// Saldo intacto y ninguna transacción en la bitácora.
	data := store.View()
	s, ok := data.FindSupplier("s1")
	require.True(t, ok)
	assert.True(t, s.BalanceDue.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, s.LastPaymentDate)
	assert.Empty(t, data.Transactions)
}

func TestSupplier_PagoModoInvalido(t *testing.T) {
	uc, _ := newSupplierFixture(t)

	_, err := uc.RecordPayment("s1", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
		Mode:   "Cheque",
	}, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplier_PagoProveedorInexistente(t *testing.T) {
	uc, _ := newSupplierFixture(t)

	_, err := uc.RecordPayment("nope", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
		Mode:   entity.PaymentModeCash,
	}, time.Now())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ────────────────────────────────────────────────────────────────────────────
// Recordatorios
// ────────────────────────────────────────────────────────────────────────────

func TestSupplier_RemindersSoloVentanaDe7Dias(t *testing.T) {
	asOf := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := asOf.AddDate(0, 0, offset)
		return &d
	}
	store := memory.NewStore(repository.Dataset{
		Suppliers: []entity.Supplier{
			{ID: "a", Name: "PorVencer", BalanceDue: decimal.NewFromInt(100), DueDate: day(3)},
			{ID: "b", Name: "Lejano", BalanceDue: decimal.NewFromInt(100), DueDate: day(10)},
			{ID: "c", Name: "Vencido", BalanceDue: decimal.NewFromInt(50), DueDate: day(-5)},
			{ID: "d", Name: "SinSaldo", BalanceDue: decimal.Zero, DueDate: day(2)},
			{ID: "e", Name: "SinFecha", BalanceDue: decimal.NewFromInt(80)},
		},
	})
	uc := NewSupplierUseCase(store, logger.Nop())

	out := uc.Reminders(asOf)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "PorVencer", out.Items[0].Name)
	assert.Equal(t, "Vencido", out.Items[1].Name)
	assert.False(t, out.Items[0].Overdue)
	assert.True(t, out.Items[1].Overdue)

	sent := uc.SendReminders(asOf)
	assert.Equal(t, 2, sent.Sent)
	assert.Equal(t, []string{"PorVencer", "Vencido"}, sent.Suppliers)
}

func TestSupplier_ListIncluyeIndicadores(t *testing.T) {
	asOf := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	due := asOf.AddDate(0, 0, 5)
	store := memory.NewStore(repository.Dataset{
		Suppliers: []entity.Supplier{
			{ID: "s1", Name: "KeyMasters", BalanceDue: decimal.NewFromInt(450), DueDate: &due},
		},
	})
	uc := NewSupplierUseCase(store, logger.Nop())

	out := uc.List(asOf)
	require.Len(t, out.Items, 1)
	item := out.Items[0]
	assert.True(t, item.NeedsReminder)
	assert.False(t, item.Overdue)
	require.NotNil(t, item.DaysUntilDue)
	assert.Equal(t, 5, *item.DaysUntilDue)
}
