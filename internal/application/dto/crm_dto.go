package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateCustomerRequest entrada para registrar un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// UpdateCustomerRequest entrada para actualizar un cliente (parcial).
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Segment *string `json:"segment"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LoyaltyPoints int64           `json:"loyalty_points"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
	Segment       string          `json:"segment"`
}

// CustomerListResponse lista de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}

// ── Leads ─────────────────────────────────────────────────────────────────────

// CreateLeadRequest entrada para registrar un lead (etapa inicial New).
type CreateLeadRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	Company string          `json:"company"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Phone   string          `json:"phone"`
	Value   decimal.Decimal `json:"value"`
	Source  string          `json:"source"`
}

// UpdateLeadStageRequest mueve un lead a otra etapa del pipeline.
type UpdateLeadStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Company   string          `json:"company,omitempty"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Value     decimal.Decimal `json:"value"`
	Stage     string          `json:"stage"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

// LeadListResponse lista de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// CreateTaskRequest entrada para crear una tarea de seguimiento.
type CreateTaskRequest struct {
	Title     string    `json:"title" validate:"required,min=1"`
	DueDate   time.Time `json:"due_date" validate:"required"`
	Priority  string    `json:"priority" validate:"required,oneof=High Medium Low"`
	RelatedTo string    `json:"related_to"`
}

// UpdateTaskStatusRequest marca una tarea como pendiente o completada.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"due_date"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	RelatedTo string    `json:"related_to,omitempty"`
}

// TaskListResponse lista de tareas.
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Total int            `json:"total"`
}
