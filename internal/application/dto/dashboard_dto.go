package dto

import "github.com/shopspring/decimal"

// DailySalesDTO ventas de un día para la serie del dashboard.
type DailySalesDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Sales decimal.Decimal `json:"sales"`
}

// DashboardStatsResponse KPIs principales del dashboard.
type DashboardStatsResponse struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	TotalOrders   int             `json:"total_orders"`
	ProductCount  int             `json:"product_count"`
	LowStockCount int             `json:"low_stock_count"`
	SalesLast7    []DailySalesDTO `json:"sales_last_7_days"`
}
