package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// CRMUseCase casos de uso del pipeline de ventas: leads y tareas de
// seguimiento.
type CRMUseCase struct {
	store repository.DataStore
}

// NewCRMUseCase construye el caso de uso.
func NewCRMUseCase(store repository.DataStore) *CRMUseCase {
	return &CRMUseCase{store: store}
}

// ── Leads ─────────────────────────────────────────────────────────────────────

// Leads lista el pipeline, opcionalmente filtrado por etapa.
func (uc *CRMUseCase) Leads(stage string) dto.LeadListResponse {
	data := uc.store.View()
	items := make([]dto.LeadResponse, 0, len(data.Leads))
	for _, l := range data.Leads {
		if stage != "" && l.Stage != stage {
			continue
		}
		items = append(items, toLeadResponse(l))
	}
	return dto.LeadListResponse{Items: items, Total: len(items)}
}

// CreateLead registra un lead en la etapa New.
func (uc *CRMUseCase) CreateLead(in dto.CreateLeadRequest, asOf time.Time) (*dto.LeadResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	l := entity.Lead{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Value:     in.Value,
		Stage:     entity.StageNew,
		Source:    in.Source,
		CreatedAt: asOf,
	}
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddLead(l), nil
	})
	if err != nil {
		return nil, err
	}
	out := toLeadResponse(l)
	return &out, nil
}

// MoveLeadStage mueve un lead a otra etapa del pipeline.
func (uc *CRMUseCase) MoveLeadStage(id string, in dto.UpdateLeadStageRequest) (*dto.LeadResponse, error) {
	if !entity.ValidLeadStage(in.Stage) {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.Lead
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		l, ok := data.FindLead(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		l.Stage = in.Stage
		updated = l
		return data.WithLead(l), nil
	})
	if err != nil {
		return nil, err
	}
	out := toLeadResponse(updated)
	return &out, nil
}

// DeleteLead elimina un lead por ID.
func (uc *CRMUseCase) DeleteLead(id string) error {
	return uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		if _, ok := data.FindLead(id); !ok {
			return data, domain.ErrNotFound
		}
		return data.WithoutLead(id), nil
	})
}

// ── Tareas ────────────────────────────────────────────────────────────────────

// Tasks lista las tareas de seguimiento.
func (uc *CRMUseCase) Tasks() dto.TaskListResponse {
	data := uc.store.View()
	items := make([]dto.TaskResponse, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		items = append(items, toTaskResponse(t))
	}
	return dto.TaskListResponse{Items: items, Total: len(items)}
}

// CreateTask crea una tarea pendiente.
func (uc *CRMUseCase) CreateTask(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Priority {
	case entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow:
	default:
		return nil, domain.ErrInvalidInput
	}

	t := entity.CRMTask{
		ID:        uuid.New().String(),
		Title:     in.Title,
		DueDate:   in.DueDate,
		Priority:  in.Priority,
		Status:    entity.TaskPending,
		RelatedTo: in.RelatedTo,
	}
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddTask(t), nil
	})
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(t)
	return &out, nil
}

// SetTaskStatus marca una tarea como pendiente o completada.
func (uc *CRMUseCase) SetTaskStatus(id string, in dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	if in.Status != entity.TaskPending && in.Status != entity.TaskCompleted {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.CRMTask
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		t, ok := data.FindTask(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		t.Status = in.Status
		updated = t
		return data.WithTask(t), nil
	})
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(updated)
	return &out, nil
}

func toLeadResponse(l entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Company:   l.Company,
		Email:     l.Email,
		Phone:     l.Phone,
		Value:     l.Value,
		Stage:     l.Stage,
		Source:    l.Source,
		CreatedAt: l.CreatedAt,
	}
}

func toTaskResponse(t entity.CRMTask) dto.TaskResponse {
	return dto.TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Priority:  t.Priority,
		Status:    t.Status,
		RelatedTo: t.RelatedTo,
	}
}
