package inventory

import (
	"context"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
)

// ValuationPDFGenerator define el puerto de salida para exportar el reporte
// de valuación como PDF. La implementación concreta (Maroto) vive en
// infraestructura.
type ValuationPDFGenerator interface {
	GenerateValuationPDF(ctx context.Context, report dto.ValuationReportResponse) ([]byte, error)
}
