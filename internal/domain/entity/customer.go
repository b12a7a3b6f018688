package entity

import "github.com/shopspring/decimal"

// Segmentos de cliente.
const (
	SegmentNew     = "New"
	SegmentRegular = "Regular"
	SegmentVIP     = "VIP"
)

// Customer representa un cliente de la tienda con sus métricas de fidelidad.
type Customer struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	TotalSpent    decimal.Decimal
	LoyaltyPoints int64
	CreditBalance decimal.Decimal
	Segment       string // New, Regular, VIP
}
