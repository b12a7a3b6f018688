package http

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
)

// receiptMaxBytes límite de tamaño de la imagen de recibo (5 MiB).
const receiptMaxBytes = 5 << 20

// FinanceHandler maneja las peticiones HTTP de caja: bitácora, gastos y
// escaneo de recibos.
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
	ai *usecase.AIUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase, ai *usecase.AIUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc, ai: ai}
}

// Transactions godoc
// @Summary      Listar transacciones
// @Tags         finance
// @Produce      json
// @Param        type  query  string  false  "Filtrar por tipo (Sale, Expense, Purchase)"
// @Success      200   {object}  dto.TransactionListResponse
// @Router       /api/finance/transactions [get]
func (h *FinanceHandler) Transactions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Transactions(c.Query("type")))
}

// AddExpense godoc
// @Summary      Registrar gasto manual
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/expenses [post]
func (h *FinanceHandler) AddExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddExpense(in, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Summary godoc
// @Summary      Resumen financiero
// @Tags         finance
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// ScanReceipt godoc
// @Summary      Escanear recibo y registrar el gasto
// @Description  Envía la imagen al servicio de IA; con los datos extraídos se registra un gasto en la bitácora.
// @Tags         finance
// @Accept       multipart/form-data
// @Produce      json
// @Param        receipt  formData  file  true  "Imagen del recibo (JPEG o PNG)"
// @Success      201  {object}  dto.ReceiptScanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/finance/receipts/scan [post]
func (h *FinanceHandler) ScanReceipt(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo 'receipt'"})
	}
	if fileHeader.Size > receiptMaxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la imagen supera el límite de 5 MB"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainError(c, err)
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, receiptMaxBytes))
	if err != nil {
		return domainError(c, err)
	}

	mimeType := fileHeader.Header.Get(fiber.HeaderContentType)
	out, err := h.ai.ScanReceipt(c.Context(), image, mimeType, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
