// Package inventory contiene los casos de uso del motor de inventario:
// reporte de valuación por método de costeo y su exportación a PDF.
package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/internal/domain/valuation"
)

// ValuationUseCase genera el reporte de valuación de inventario. Lee la
// instantánea vigente del almacén y delega todo el cálculo en el servicio de
// dominio; no cachea resultados.
type ValuationUseCase struct {
	store repository.DataStore
	pdf   ValuationPDFGenerator
}

// NewValuationUseCase construye el caso de uso. pdf puede ser nil si la
// exportación no está habilitada.
func NewValuationUseCase(store repository.DataStore, pdf ValuationPDFGenerator) *ValuationUseCase {
	return &ValuationUseCase{store: store, pdf: pdf}
}

// Report calcula la valuación por producto bajo los tres métodos y los
// totales de cartera.
func (uc *ValuationUseCase) Report(asOf time.Time) dto.ValuationReportResponse {
	data := uc.store.View()

	rows := make([]dto.ValuationRowDTO, 0, len(data.Products))
	for _, p := range data.Products {
		var batchQty int64
		for _, b := range p.Batches {
			batchQty += b.Quantity
		}
		rows = append(rows, dto.ValuationRowDTO{
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Stock:     p.Stock,
			BatchQty:  batchQty,
			FIFO:      valuation.Valuate(p, valuation.FIFO),
			LIFO:      valuation.Valuate(p, valuation.LIFO),
			AVG:       valuation.Valuate(p, valuation.AVG),
		})
	}

	totals := valuation.Portfolio(data.Products)
	return dto.ValuationReportResponse{
		Rows:        rows,
		TotalFIFO:   totals.FIFO,
		TotalLIFO:   totals.LIFO,
		TotalAVG:    totals.AVG,
		GeneratedAt: asOf,
	}
}

// ReportPDF genera el reporte y lo exporta como PDF.
func (uc *ValuationUseCase) ReportPDF(ctx context.Context, asOf time.Time) ([]byte, error) {
	report := uc.Report(asOf)
	return uc.pdf.GenerateValuationPDF(ctx, report)
}
