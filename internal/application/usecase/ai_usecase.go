package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/application/ports"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/pkg/logger"
)

// Timeouts por operación: la narrativa es solo texto; el OCR de recibos sube
// una imagen y puede demorar más.
const (
	insightTimeout = 10 * time.Second
	receiptTimeout = 25 * time.Second
)

// fallbackNarrative se devuelve cuando el servicio de IA falla: la caída del
// colaborador externo nunca es fatal para la página.
const fallbackNarrative = "AI Insights are currently unavailable. Please check your network or API key."

// AIUseCase orquesta las dos llamadas al servicio de IA: narrativa de salud
// del negocio y extracción de datos de recibos. Cada llamada lleva su propio
// context.WithTimeout para que las latencias externas no bloqueen el servidor.
type AIUseCase struct {
	store repository.DataStore
	llm   ports.LLMService
	log   *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(store repository.DataStore, llm ports.LLMService, log *logger.Logger) *AIUseCase {
	return &AIUseCase{store: store, llm: llm, log: log}
}

// BusinessInsight calcula el snapshot financiero de la instantánea vigente y
// pide al modelo el resumen ejecutivo. Si la llamada falla por cualquier
// motivo, devuelve la narrativa de respaldo con Generated=false en lugar de
// propagar el error.
func (uc *AIUseCase) BusinessInsight(ctx context.Context) dto.BusinessInsightResponse {
	snap := uc.healthSnapshot()

	ctx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	narrative, err := uc.llm.SummarizeBusinessHealth(ctx, snap)
	if err != nil {
		uc.log.Warn().Err(err).Msg("narrativa IA no disponible, usando respaldo")
		narrative = fallbackNarrative
	}

	return dto.BusinessInsightResponse{
		Narrative:     strings.TrimSpace(narrative),
		Generated:     err == nil,
		Revenue:       snap.Revenue,
		Expenses:      snap.Expenses,
		NetProfit:     snap.NetProfit,
		SaleCount:     snap.SaleCount,
		LowStockItems: snap.LowStockItems,
	}
}

// ScanReceipt envía la imagen del recibo al modelo, y con los datos extraídos
// registra un gasto en la bitácora. A diferencia de la narrativa, un fallo
// aquí sí se propaga (envuelto en ErrExternalService) para que el caller pida
// una imagen más clara; no se registra nada en ese caso.
func (uc *AIUseCase) ScanReceipt(ctx context.Context, image []byte, mimeType string, asOf time.Time) (*dto.ReceiptScanResponse, error) {
	if len(image) == 0 || !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, receiptTimeout)
	defer cancel()

	receipt, err := uc.llm.ExtractReceipt(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: extraer recibo: %v", domain.ErrExternalService, err)
	}
	if !receipt.Total.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el modelo no extrajo un total válido", domain.ErrExternalService)
	}

	date := asOf
	if parsed, perr := time.Parse("2006-01-02", receipt.Date); perr == nil {
		date = parsed
	}

	description := "Auto-scan: " + receipt.Merchant
	if len(receipt.Items) > 0 {
		description += " - " + strings.Join(receipt.Items, ", ")
	}

	tx := entity.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        entity.TransactionExpense,
		Amount:      receipt.Total,
		Description: description,
		PaymentMode: entity.PaymentModeCard,
		Category:    entity.CategoryOperational,
		Status:      entity.StatusCompleted,
	}
	if err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddTransaction(tx), nil
	}); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("merchant", receipt.Merchant).
		Str("total", receipt.Total.String()).
		Msg("recibo escaneado y gasto registrado")

	return &dto.ReceiptScanResponse{
		Merchant:    receipt.Merchant,
		Date:        receipt.Date,
		Total:       receipt.Total,
		Items:       receipt.Items,
		Transaction: toTransactionResponse(tx),
	}, nil
}

// healthSnapshot arma el resumen financiero para el prompt: ingresos, gastos,
// neto, número de ventas y productos en stock crítico.
func (uc *AIUseCase) healthSnapshot() ports.HealthSnapshot {
	data := uc.store.View()

	revenue := decimal.Zero
	expenses := decimal.Zero
	saleCount := 0
	for _, tx := range data.Transactions {
		switch tx.Type {
		case entity.TransactionSale:
			revenue = revenue.Add(tx.Amount)
			saleCount++
		case entity.TransactionExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	lowStock := make([]string, 0)
	for _, p := range data.Products {
		if p.IsLowStock() {
			lowStock = append(lowStock, p.Name)
		}
	}

	return ports.HealthSnapshot{
		Revenue:       revenue,
		Expenses:      expenses,
		NetProfit:     revenue.Sub(expenses),
		SaleCount:     saleCount,
		LowStockItems: lowStock,
	}
}
