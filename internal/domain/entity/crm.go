package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline de ventas.
const (
	StageNew         = "New"
	StageContacted   = "Contacted"
	StageQualified   = "Qualified"
	StageProposal    = "Proposal"
	StageNegotiation = "Negotiation"
	StageWon         = "Won"
	StageLost        = "Lost"
)

// ValidLeadStage indica si la etapa pertenece al pipeline.
func ValidLeadStage(stage string) bool {
	switch stage {
	case StageNew, StageContacted, StageQualified, StageProposal,
		StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// Lead es una oportunidad de venta en el pipeline del CRM.
type Lead struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Value     decimal.Decimal
	Stage     string
	Source    string
	CreatedAt time.Time
}

// Prioridades y estados de tareas del CRM.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	TaskPending   = "Pending"
	TaskCompleted = "Completed"
)

// CRMTask es una tarea de seguimiento asociada a un lead o cliente.
type CRMTask struct {
	ID        string
	Title     string
	DueDate   time.Time
	Priority  string // High, Medium, Low
	Status    string // Pending, Completed
	RelatedTo string // nombre del lead o cliente
}
