// Package valuation implementa el motor de valuación de inventario sobre los
// lotes históricos de compra: FIFO, LIFO y costo promedio ponderado
// (servicio de dominio, funciones puras sobre valores).
package valuation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
)

// Method es la política de costeo usada para valuar el inventario restante.
type Method string

const (
	// FIFO asume que lo más antiguo se vendió primero: el stock restante son
	// las unidades adquiridas más recientemente.
	FIFO Method = "FIFO"
	// LIFO es el espejo: lo más nuevo se vendió primero y queda lo más viejo.
	LIFO Method = "LIFO"
	// AVG valúa al costo promedio ponderado sobre todos los lotes.
	AVG Method = "AVG"
)

// Valid indica si el método es uno de los soportados.
func (m Method) Valid() bool {
	return m == FIFO || m == LIFO || m == AVG
}

// Valuate calcula el valor del stock restante de un producto bajo el método
// indicado. No modifica el producto ni sus lotes y no redondea durante la
// acumulación; el redondeo a centavos es responsabilidad de la capa de
// presentación.
//
// Sin lotes registrados, todos los métodos valúan a Stock × Cost.
func Valuate(p entity.Product, method Method) decimal.Decimal {
	if len(p.Batches) == 0 {
		return decimal.NewFromInt(p.Stock).Mul(p.Cost)
	}

	if method == AVG {
		return decimal.NewFromInt(p.Stock).Mul(weightedCost(p))
	}

	// FIFO recorre los lotes de nuevo a viejo; LIFO de viejo a nuevo. El
	// orden debe ser estable: lotes con la misma fecha conservan su orden
	// relativo de entrada.
	batches := make([]entity.StockBatch, len(p.Batches))
	copy(batches, p.Batches)
	sort.SliceStable(batches, func(i, j int) bool {
		if method == FIFO {
			return batches[i].Date.After(batches[j].Date)
		}
		return batches[i].Date.Before(batches[j].Date)
	})

	remaining := p.Stock
	total := decimal.Zero
	for _, b := range batches {
		if remaining <= 0 {
			break
		}
		take := b.Quantity
		if take > remaining {
			take = remaining
		}
		total = total.Add(decimal.NewFromInt(take).Mul(b.UnitCost))
		remaining -= take
	}

	// Los lotes pueden sub-reportar el stock real (stock anterior al primer
	// lote registrado): el excedente se valúa al costo plano del producto.
	// El caso contrario (lotes que sobre-reportan) no es un error: la
	// cantidad sobrante simplemente nunca se consume.
	if remaining > 0 {
		total = total.Add(decimal.NewFromInt(remaining).Mul(p.Cost))
	}
	return total
}

// weightedCost es el promedio ponderado sobre TODOS los lotes, no solo sobre
// el stock restante. Con cantidad total cero cae al costo plano.
func weightedCost(p entity.Product) decimal.Decimal {
	totalQty := decimal.Zero
	totalCost := decimal.Zero
	for _, b := range p.Batches {
		qty := decimal.NewFromInt(b.Quantity)
		totalQty = totalQty.Add(qty)
		totalCost = totalCost.Add(qty.Mul(b.UnitCost))
	}
	if totalQty.IsZero() {
		return p.Cost
	}
	return totalCost.Div(totalQty)
}

// PortfolioTotals son los totales de cartera bajo los tres métodos.
type PortfolioTotals struct {
	FIFO decimal.Decimal
	LIFO decimal.Decimal
	AVG  decimal.Decimal
}

// Portfolio suma Valuate por producto para cada método. Se recalcula completo
// en cada llamada; no hay caché.
func Portfolio(products []entity.Product) PortfolioTotals {
	t := PortfolioTotals{FIFO: decimal.Zero, LIFO: decimal.Zero, AVG: decimal.Zero}
	for _, p := range products {
		t.FIFO = t.FIFO.Add(Valuate(p, FIFO))
		t.LIFO = t.LIFO.Add(Valuate(p, LIFO))
		t.AVG = t.AVG.Add(Valuate(p, AVG))
	}
	return t
}
