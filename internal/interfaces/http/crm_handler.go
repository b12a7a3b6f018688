package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
)

// CRMHandler maneja clientes, leads y tareas de seguimiento.
type CRMHandler struct {
	customers *usecase.CustomerUseCase
	crm       *usecase.CRMUseCase
}

// NewCRMHandler construye el handler.
func NewCRMHandler(customers *usecase.CustomerUseCase, crm *usecase.CRMUseCase) *CRMHandler {
	return &CRMHandler{customers: customers, crm: crm}
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// ListCustomers godoc
// @Summary      Listar clientes
// @Tags         crm
// @Produce      json
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CRMHandler) ListCustomers(c *fiber.Ctx) error {
	return c.JSON(h.customers.List())
}

// CreateCustomer godoc
// @Summary      Crear cliente
// @Tags         crm
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CRMHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.customers.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCustomer godoc
// @Summary      Actualizar cliente
// @Tags         crm
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CRMHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.customers.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteCustomer godoc
// @Summary      Eliminar cliente
// @Tags         crm
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CRMHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// ── Leads ─────────────────────────────────────────────────────────────────────

// ListLeads godoc
// @Summary      Listar leads
// @Tags         crm
// @Produce      json
// @Param        stage  query  string  false  "Filtrar por etapa del pipeline"
// @Success      200  {object}  dto.LeadListResponse
// @Router       /api/crm/leads [get]
func (h *CRMHandler) ListLeads(c *fiber.Ctx) error {
	return c.JSON(h.crm.Leads(c.Query("stage")))
}

// CreateLead godoc
// @Summary      Crear lead
// @Tags         crm
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Datos del lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/leads [post]
func (h *CRMHandler) CreateLead(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.crm.CreateLead(in, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MoveLeadStage godoc
// @Summary      Mover lead de etapa
// @Tags         crm
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadStageRequest  true  "Nueva etapa"
// @Success      200   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crm/leads/{id}/stage [put]
func (h *CRMHandler) MoveLeadStage(c *fiber.Ctx) error {
	var in dto.UpdateLeadStageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.crm.MoveLeadStage(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteLead godoc
// @Summary      Eliminar lead
// @Tags         crm
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/leads/{id} [delete]
func (h *CRMHandler) DeleteLead(c *fiber.Ctx) error {
	if err := h.crm.DeleteLead(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// ListTasks godoc
// @Summary      Listar tareas de seguimiento
// @Tags         crm
// @Produce      json
// @Success      200  {object}  dto.TaskListResponse
// @Router       /api/crm/tasks [get]
func (h *CRMHandler) ListTasks(c *fiber.Ctx) error {
	return c.JSON(h.crm.Tasks())
}

// CreateTask godoc
// @Summary      Crear tarea
// @Tags         crm
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/tasks [post]
func (h *CRMHandler) CreateTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.crm.CreateTask(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetTaskStatus godoc
// @Summary      Cambiar estado de tarea
// @Tags         crm
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crm/tasks/{id}/status [put]
func (h *CRMHandler) SetTaskStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.crm.SetTaskStatus(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
