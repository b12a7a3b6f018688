// Package analytics agrega los datos de la tienda para el dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

const salesSeriesDays = 7

// DashboardUseCase calcula los KPIs de la vista principal.
type DashboardUseCase struct {
	store repository.DataStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.DataStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Stats agrega ventas, utilidad neta, órdenes y alertas de stock sobre la
// instantánea vigente. asOf ancla la serie de los últimos 7 días.
func (uc *DashboardUseCase) Stats(asOf time.Time) dto.DashboardStatsResponse {
	data := uc.store.View()

	totalSales := decimal.Zero
	totalExpenses := decimal.Zero
	totalOrders := 0
	for _, tx := range data.Transactions {
		switch tx.Type {
		case entity.TransactionSale:
			totalSales = totalSales.Add(tx.Amount)
			totalOrders++
		case entity.TransactionExpense:
			totalExpenses = totalExpenses.Add(tx.Amount)
		}
	}

	lowStock := 0
	for _, p := range data.Products {
		if p.IsLowStock() {
			lowStock++
		}
	}

	return dto.DashboardStatsResponse{
		TotalSales:    totalSales,
		NetProfit:     totalSales.Sub(totalExpenses),
		TotalOrders:   totalOrders,
		ProductCount:  len(data.Products),
		LowStockCount: lowStock,
		SalesLast7:    salesSeries(data.Transactions, asOf),
	}
}

// salesSeries suma las ventas por día calendario de los últimos 7 días,
// incluyendo el día asOf. Los días sin ventas aparecen en cero para que la
// gráfica no tenga huecos.
func salesSeries(txs []entity.Transaction, asOf time.Time) []dto.DailySalesDTO {
	dayEnd := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	byDay := make(map[string]decimal.Decimal, salesSeriesDays)
	for _, tx := range txs {
		if tx.Type != entity.TransactionSale {
			continue
		}
		key := tx.Date.Format("2006-01-02")
		byDay[key] = byDay[key].Add(tx.Amount)
	}

	series := make([]dto.DailySalesDTO, 0, salesSeriesDays)
	for i := salesSeriesDays - 1; i >= 0; i-- {
		day := dayEnd.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		sales := byDay[key]
		series = append(series, dto.DailySalesDTO{Date: key, Sales: sales})
	}
	return series
}
