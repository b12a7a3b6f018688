package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/internal/infrastructure/memory"
)

func TestStats_KPIsYSerieDe7Dias(t *testing.T) {
	asOf := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return asOf.AddDate(0, 0, offset) }

	store := memory.NewStore(repository.Dataset{
		Products: []entity.Product{
			{ID: "p1", Name: "Monitor", Stock: 20, MinStockLevel: 5},
			{ID: "p2", Name: "Dock", Stock: 2, MinStockLevel: 5},
		},
		Transactions: []entity.Transaction{
			{ID: "t1", Date: asOf, Type: entity.TransactionSale, Amount: decimal.NewFromInt(450)},
			{ID: "t2", Date: day(-1), Type: entity.TransactionSale, Amount: decimal.NewFromInt(300)},
			{ID: "t3", Date: day(-1), Type: entity.TransactionSale, Amount: decimal.NewFromInt(150)},
			{ID: "t4", Date: day(-8), Type: entity.TransactionSale, Amount: decimal.NewFromInt(999)}, // fuera de la serie
			{ID: "t5", Date: asOf, Type: entity.TransactionExpense, Amount: decimal.NewFromInt(200)},
		},
	})
	uc := NewDashboardUseCase(store)

	out := uc.Stats(asOf)
	assert.True(t, out.TotalSales.Equal(decimal.NewFromInt(1899))) // todas las ventas, sin ventana
	assert.True(t, out.NetProfit.Equal(decimal.NewFromInt(1699)))
	assert.Equal(t, 4, out.TotalOrders)
	assert.Equal(t, 2, out.ProductCount)
	assert.Equal(t, 1, out.LowStockCount)

	// Serie de 7 días: sin huecos, en orden cronológico, y la venta de hace 8
	// días queda fuera.
	require.Len(t, out.SalesLast7, 7)
	assert.Equal(t, "2024-03-04", out.SalesLast7[0].Date)
	assert.Equal(t, "2024-03-10", out.SalesLast7[6].Date)
	assert.True(t, out.SalesLast7[6].Sales.Equal(decimal.NewFromInt(450)))
	assert.True(t, out.SalesLast7[5].Sales.Equal(decimal.NewFromInt(450))) // 300+150
	assert.True(t, out.SalesLast7[0].Sales.IsZero())
}
