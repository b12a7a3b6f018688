package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retailpilot-api/internal/application/inventory"
)

// InventoryHandler maneja el reporte de valuación de inventario.
type InventoryHandler struct {
	uc *inventory.ValuationUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ValuationUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Valuation godoc
// @Summary      Reporte de valuación de inventario
// @Description  Valuación por producto bajo FIFO, LIFO y costo promedio, con totales de cartera. Se recalcula en cada petición.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ValuationReportResponse
// @Router       /api/inventory/valuation [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Report(time.Now()))
}

// ValuationPDF godoc
// @Summary      Exportar reporte de valuación como PDF
// @Tags         inventory
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/valuation/pdf [get]
func (h *InventoryHandler) ValuationPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ReportPDF(c.Context(), time.Now())
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="valuation-report.pdf"`)
	return c.Send(pdfBytes)
}
