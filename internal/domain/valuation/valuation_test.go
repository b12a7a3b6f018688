package valuation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/valuation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(offset int) time.Time {
	base := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

// headsetProduct replica el producto de ejemplo del catálogo demo: 30 en
// stock, costo plano 82, tres lotes (15@70, 20@75, 30@82) de viejo a nuevo.
func headsetProduct() entity.Product {
	return entity.Product{
		ID: "1", Name: "Premium Wireless Headset", SKU: "WH-001",
		Cost:  dec("82"),
		Stock: 30,
		Batches: []entity.StockBatch{
			{ID: "b1", Date: day(0), Quantity: 15, UnitCost: dec("70")},
			{ID: "b2", Date: day(45), Quantity: 20, UnitCost: dec("75")},
			{ID: "b3", Date: day(80), Quantity: 30, UnitCost: dec("82")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Valuate
// ──────────────────────────────────────────────────────────────────────────────

// Sin lotes, los tres métodos caen al costo plano: Stock × Cost.
func TestValuate_SinLotes_UsaCostoPlano(t *testing.T) {
	p := entity.Product{ID: "x", Cost: dec("45"), Stock: 2}

	expected := dec("90")
	for _, m := range []valuation.Method{valuation.FIFO, valuation.LIFO, valuation.AVG} {
		assert.True(t, valuation.Valuate(p, m).Equal(expected),
			"método %s debe valuar 2 × 45 = 90", m)
	}
}

// FIFO: el stock restante son las unidades más nuevas. Con 30 en stock y el
// lote más nuevo de 30@82, la valuación es 30 × 82 = 2460.
func TestValuate_FIFO_ConsumeLotesMasNuevos(t *testing.T) {
	got := valuation.Valuate(headsetProduct(), valuation.FIFO)
	assert.True(t, got.Equal(dec("2460")), "FIFO = 2460, obtuvo %s", got)
}

// LIFO: el stock restante son las unidades más viejas. 15@70 + 15@75 = 2175.
func TestValuate_LIFO_ConsumeLotesMasViejos(t *testing.T) {
	got := valuation.Valuate(headsetProduct(), valuation.LIFO)
	assert.True(t, got.Equal(dec("2175")), "LIFO = 2175, obtuvo %s", got)
}

// AVG: promedio ponderado sobre TODOS los lotes, independiente del orden.
// (15×70 + 20×75 + 30×82) / 65 = 5010/65; valuación = 30 × ese promedio.
func TestValuate_AVG_PromedioPonderadoSobreTodosLosLotes(t *testing.T) {
	p := headsetProduct()
	avgCost := dec("5010").Div(dec("65"))
	expected := dec("30").Mul(avgCost)

	got := valuation.Valuate(p, valuation.AVG)
	assert.True(t, got.Equal(expected), "AVG = %s, obtuvo %s", expected, got)

	// Invertir el orden de los lotes no cambia el promedio.
	reversed := p
	reversed.Batches = []entity.StockBatch{p.Batches[2], p.Batches[1], p.Batches[0]}
	assert.True(t, valuation.Valuate(reversed, valuation.AVG).Equal(expected),
		"AVG debe ser independiente del orden de los lotes")
}

// Con cantidad total de lotes cero, AVG cae al costo plano.
func TestValuate_AVG_LotesVacios_CaeAlCostoPlano(t *testing.T) {
	p := entity.Product{
		ID: "z", Cost: dec("10"), Stock: 4,
		Batches: []entity.StockBatch{
			{ID: "b1", Date: day(0), Quantity: 0, UnitCost: dec("99")},
		},
	}
	assert.True(t, valuation.Valuate(p, valuation.AVG).Equal(dec("40")))
}

// Si los lotes no cubren el stock real, el excedente se valúa al costo plano.
func TestValuate_LotesSubReportanStock_ExcedenteACostoPlano(t *testing.T) {
	p := entity.Product{
		ID: "y", Cost: dec("50"), Stock: 10,
		Batches: []entity.StockBatch{
			{ID: "b1", Date: day(0), Quantity: 4, UnitCost: dec("40")},
		},
	}
	// 4 × 40 + 6 × 50 = 460, igual para FIFO y LIFO (un solo lote).
	expected := dec("460")
	assert.True(t, valuation.Valuate(p, valuation.FIFO).Equal(expected))
	assert.True(t, valuation.Valuate(p, valuation.LIFO).Equal(expected))
}

// FIFO y LIFO quedan acotados por Stock × min(costo) y Stock × max(costo)
// cuando los lotes cubren el stock completo.
func TestValuate_FIFOyLIFO_AcotadosPorCostosExtremos(t *testing.T) {
	p := headsetProduct()
	lower := dec("30").Mul(dec("70"))
	upper := dec("30").Mul(dec("82"))

	for _, m := range []valuation.Method{valuation.FIFO, valuation.LIFO} {
		got := valuation.Valuate(p, m)
		assert.True(t, got.GreaterThanOrEqual(lower), "%s ≥ stock × costo mínimo", m)
		assert.True(t, got.LessThanOrEqual(upper), "%s ≤ stock × costo máximo", m)
	}
}

// Lotes con fecha idéntica conservan su orden relativo de entrada (orden
// estable): el primero en la lista se consume primero.
func TestValuate_FechasIguales_OrdenEstable(t *testing.T) {
	p := entity.Product{
		ID: "t", Cost: dec("0"), Stock: 5,
		Batches: []entity.StockBatch{
			{ID: "a", Date: day(0), Quantity: 5, UnitCost: dec("10")},
			{ID: "b", Date: day(0), Quantity: 5, UnitCost: dec("20")},
		},
	}
	// Misma fecha: FIFO y LIFO deben consumir primero el lote "a".
	assert.True(t, valuation.Valuate(p, valuation.FIFO).Equal(dec("50")))
	assert.True(t, valuation.Valuate(p, valuation.LIFO).Equal(dec("50")))
}

// Valuate es pura: no debe reordenar ni modificar los lotes del producto.
func TestValuate_NoMutaElProducto(t *testing.T) {
	p := headsetProduct()
	_ = valuation.Valuate(p, valuation.FIFO)
	_ = valuation.Valuate(p, valuation.LIFO)

	require.Len(t, p.Batches, 3)
	assert.Equal(t, "b1", p.Batches[0].ID, "el orden original de los lotes debe conservarse")
	assert.Equal(t, "b3", p.Batches[2].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Portfolio
// ──────────────────────────────────────────────────────────────────────────────

func TestPortfolio_SumaPorMetodo(t *testing.T) {
	products := []entity.Product{
		headsetProduct(),
		{ID: "2", Cost: dec("45"), Stock: 2}, // sin lotes: 90 en los tres métodos
	}

	totals := valuation.Portfolio(products)
	assert.True(t, totals.FIFO.Equal(dec("2550")), "FIFO total = 2460 + 90")
	assert.True(t, totals.LIFO.Equal(dec("2265")), "LIFO total = 2175 + 90")

	avgHeadset := dec("30").Mul(dec("5010").Div(dec("65")))
	assert.True(t, totals.AVG.Equal(avgHeadset.Add(dec("90"))))
}

func TestMethod_Valid(t *testing.T) {
	assert.True(t, valuation.FIFO.Valid())
	assert.True(t, valuation.LIFO.Valid())
	assert.True(t, valuation.AVG.Valid())
	assert.False(t, valuation.Method("WAC").Valid())
}
