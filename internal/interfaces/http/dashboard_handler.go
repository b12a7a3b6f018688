package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retailpilot-api/internal/application/analytics"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
)

// DashboardHandler maneja los KPIs y la narrativa de salud del negocio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
	ai *usecase.AIUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, ai *usecase.AIUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, ai: ai}
}

// Stats godoc
// @Summary      KPIs del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stats(time.Now()))
}

// Insight godoc
// @Summary      Narrativa de salud del negocio
// @Description  Resumen ejecutivo generado por IA. Si el servicio externo falla, devuelve un mensaje de respaldo con generated=false; el endpoint nunca falla por la IA.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.BusinessInsightResponse
// @Router       /api/dashboard/insight [get]
func (h *DashboardHandler) Insight(c *fiber.Ctx) error {
	return c.JSON(h.ai.BusinessInsight(c.Context()))
}
