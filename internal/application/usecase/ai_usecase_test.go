package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/application/ports"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/internal/infrastructure/memory"
	"github.com/jhoicas/retailpilot-api/pkg/logger"
)

// mockLLM implementación de prueba del puerto LLMService.
type mockLLM struct {
	narrative    string
	narrativeErr error
	receipt      *ports.ReceiptData
	receiptErr   error
}

func (m *mockLLM) SummarizeBusinessHealth(_ context.Context, _ ports.HealthSnapshot) (string, error) {
	return m.narrative, m.narrativeErr
}

func (m *mockLLM) ExtractReceipt(_ context.Context, _ []byte, _ string) (*ports.ReceiptData, error) {
	return m.receipt, m.receiptErr
}

func newAIFixture(llm ports.LLMService) (*AIUseCase, *memory.Store) {
	store := memory.NewStore(repository.Dataset{
		Products: []entity.Product{
			{ID: "p1", Name: "Docking Station", Stock: 2, MinStockLevel: 5},
		},
		Transactions: []entity.Transaction{
			{ID: "t1", Type: entity.TransactionSale, Amount: decimal.NewFromInt(450)},
			{ID: "t2", Type: entity.TransactionExpense, Amount: decimal.NewFromInt(120)},
		},
	})
	return NewAIUseCase(store, llm, logger.Nop()), store
}

// ────────────────────────────────────────────────────────────────────────────
// Narrativa de salud: nunca falla
// ────────────────────────────────────────────────────────────────────────────

func TestBusinessInsight_NarrativaDelModelo(t *testing.T) {
	uc, _ := newAIFixture(&mockLLM{narrative: "- Ventas estables\n- Margen sano\n- Reponer stock"})

	out := uc.BusinessInsight(context.Background())
	assert.True(t, out.Generated)
	assert.Contains(t, out.Narrative, "Ventas estables")
	assert.True(t, out.Revenue.Equal(decimal.NewFromInt(450)))
	assert.True(t, out.NetProfit.Equal(decimal.NewFromInt(330)))
	assert.Equal(t, 1, out.SaleCount)
	assert.Equal(t, []string{"Docking Station"}, out.LowStockItems)
}

func TestBusinessInsight_FalloDevuelveRespaldo(t *testing.T) {
	uc, _ := newAIFixture(&mockLLM{narrativeErr: errors.New("api caída")})

	out := uc.BusinessInsight(context.Background())
	assert.False(t, out.Generated)
	assert.Equal(t, fallbackNarrative, out.Narrative)
	// Las cifras locales se devuelven igual, venga o no la narrativa.
	assert.True(t, out.Expenses.Equal(decimal.NewFromInt(120)))
}

// ────────────────────────────────────────────────────────────────────────────
// Escaneo de recibos
// ────────────────────────────────────────────────────────────────────────────

func TestScanReceipt_RegistraGasto(t *testing.T) {
	uc, store := newAIFixture(&mockLLM{receipt: &ports.ReceiptData{
		Merchant: "Office Depot",
		Date:     "2024-02-20",
		Total:    decimal.NewFromFloat(84.50),
		Items:    []string{"Paper", "Toner"},
	}})

	out, err := uc.ScanReceipt(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Office Depot", out.Merchant)
	tx := out.Transaction
	assert.Equal(t, entity.TransactionExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(84.50)))
	assert.Equal(t, "Auto-scan: Office Depot - Paper, Toner", tx.Description)
	assert.Equal(t, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), tx.Date)

	// El gasto quedó al frente de la bitácora.
	data := store.View()
	require.Len(t, data.Transactions, 3)
	assert.Equal(t, tx.ID, data.Transactions[0].ID)
}

func TestScanReceipt_FalloDelModeloNoRegistraNada(t *testing.T) {
	uc, store := newAIFixture(&mockLLM{receiptErr: errors.New("imagen ilegible")})

	_, err := uc.ScanReceipt(context.Background(), []byte{0x01}, "image/png", time.Now())
	require.ErrorIs(t, err, domain.ErrExternalService)
	assert.Len(t, store.View().Transactions, 2)
}

func TestScanReceipt_TotalInvalidoSeRechaza(t *testing.T) {
	uc, store := newAIFixture(&mockLLM{receipt: &ports.ReceiptData{
		Merchant: "???",
		Total:    decimal.Zero,
	}})

	_, err := uc.ScanReceipt(context.Background(), []byte{0x01}, "image/png", time.Now())
	require.ErrorIs(t, err, domain.ErrExternalService)
	assert.Len(t, store.View().Transactions, 2)
}

func TestScanReceipt_EntradaInvalida(t *testing.T) {
	uc, _ := newAIFixture(&mockLLM{})

	_, err := uc.ScanReceipt(context.Background(), nil, "image/png", time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ScanReceipt(context.Background(), []byte{0x01}, "application/pdf", time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
