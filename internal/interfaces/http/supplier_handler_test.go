package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/application/analytics"
	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/application/inventory"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/internal/infrastructure/memory"
	"github.com/jhoicas/retailpilot-api/pkg/logger"
)

// newTestApp arma una app Fiber con el router completo sobre un almacén en
// memoria con un proveedor y un producto de prueba.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	due := time.Now().AddDate(0, 0, 3)
	store := memory.NewStore(repository.Dataset{
		Products: []entity.Product{
			{
				ID: "p1", Name: "Premium Wireless Headset", SKU: "WH-001",
				Price: decimal.NewFromFloat(149.99), Cost: decimal.NewFromInt(80),
				Stock: 30, MinStockLevel: 10,
				Batches: []entity.StockBatch{
					{ID: "b1", Date: time.Now().AddDate(0, 0, -90), Quantity: 15, UnitCost: decimal.NewFromInt(70)},
					{ID: "b2", Date: time.Now().AddDate(0, 0, -60), Quantity: 20, UnitCost: decimal.NewFromInt(75)},
					{ID: "b3", Date: time.Now().AddDate(0, 0, -30), Quantity: 30, UnitCost: decimal.NewFromInt(82)},
				},
			},
		},
		Suppliers: []entity.Supplier{
			{ID: "s1", Name: "KeyMasters", Email: "sales@keymasters.com",
				BalanceDue: decimal.NewFromFloat(450.50), DueDate: &due},
		},
	})

	log := logger.Nop()
	app := fiber.New()
	Router(app, RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store),
		ValuationUC: inventory.NewValuationUseCase(store, nil),
		SupplierUC:  usecase.NewSupplierUseCase(store, log),
		FinanceUC:   usecase.NewFinanceUseCase(store),
		DashboardUC: analytics.NewDashboardUseCase(store),
		CustomerUC:  usecase.NewCustomerUseCase(store),
		CRMUC:       usecase.NewCRMUseCase(store),
		DocumentUC:  usecase.NewDocumentUseCase(store),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ────────────────────────────────────────────────────────────────────────────
// Pagos a proveedor
// ────────────────────────────────────────────────────────────────────────────

func TestRecordPayment_OK(t *testing.T) {
	app, store := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/suppliers/s1/payments", dto.RecordPaymentRequest{
		Amount: decimal.NewFromFloat(450.50),
		Mode:   entity.PaymentModeCash,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.PaymentResponse](t, resp)
	assert.True(t, out.Supplier.BalanceDue.IsZero())
	assert.Equal(t, "Payment to KeyMasters", out.Transaction.Description)
	assert.Len(t, store.View().Transactions, 1)
}

func TestRecordPayment_SobrepagoDevuelve422(t *testing.T) {
	app, store := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/suppliers/s1/payments", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(9999),
		Mode:   entity.PaymentModeCash,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_BALANCE", out.Code)
	assert.Empty(t, store.View().Transactions)
}

func TestRecordPayment_ProveedorInexistente404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/suppliers/nope/payments", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
		Mode:   entity.PaymentModeCash,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ────────────────────────────────────────────────────────────────────────────
// Recordatorios
// ────────────────────────────────────────────────────────────────────────────

func TestReminders_ProveedorPorVencerAparece(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/suppliers/reminders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.ReminderListResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "KeyMasters", out.Items[0].Name)
	assert.True(t, out.Items[0].NeedsReminder)
}

// ────────────────────────────────────────────────────────────────────────────
// Valuación
// ────────────────────────────────────────────────────────────────────────────

func TestValuation_ReporteCompleto(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/valuation", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.ValuationReportResponse](t, resp)
	require.Len(t, out.Rows, 1)
	row := out.Rows[0]
	// 30 en stock: FIFO consume los lotes más nuevos (30@82),
	// LIFO los más viejos (15@70 + 15@75).
	assert.True(t, row.FIFO.Equal(decimal.NewFromInt(2460)), "FIFO = %s", row.FIFO)
	assert.True(t, row.LIFO.Equal(decimal.NewFromInt(2175)), "LIFO = %s", row.LIFO)
	assert.True(t, out.TotalFIFO.Equal(row.FIFO))
}

func TestProductCreate_SKUDuplicado409(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Otro headset", SKU: "wh-001",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
