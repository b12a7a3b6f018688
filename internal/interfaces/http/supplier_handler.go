package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP del libro de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(time.Now()))
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// AddBill godoc
// @Summary      Registrar factura de proveedor
// @Description  Sube el saldo pendiente y, si viene informada, reemplaza la fecha de vencimiento.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.AddBillRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/bills [post]
func (h *SupplierHandler) AddBill(c *fiber.Ctx) error {
	var in dto.AddBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddBill(c.Params("id"), in, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// RecordPayment godoc
// @Summary      Registrar pago a proveedor
// @Description  Rebaja el saldo pendiente y registra el gasto en la bitácora en la misma operación.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.RecordPaymentRequest  true  "Datos del pago"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/payments [post]
func (h *SupplierHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordPayment(c.Params("id"), in, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Reminders godoc
// @Summary      Proveedores con pago por vencer o vencido
// @Description  Proveedores con saldo pendiente cuya fecha de vencimiento ya pasó o cae dentro de los próximos 7 días.
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.ReminderListResponse
// @Router       /api/suppliers/reminders [get]
func (h *SupplierHandler) Reminders(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reminders(time.Now()))
}

// SendReminders godoc
// @Summary      Enviar recordatorios de pago
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.SendRemindersResponse
// @Router       /api/suppliers/reminders/send [post]
func (h *SupplierHandler) SendReminders(c *fiber.Ctx) error {
	return c.JSON(h.uc.SendReminders(time.Now()))
}
