package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	store repository.DataStore
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.DataStore) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() dto.CustomerListResponse {
	data := uc.store.View()
	items := make([]dto.CustomerResponse, 0, len(data.Customers))
	for _, c := range data.Customers {
		items = append(items, toCustomerResponse(c))
	}
	return dto.CustomerListResponse{Items: items, Total: len(items)}
}

// Create registra un cliente nuevo en el segmento New.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		TotalSpent:    decimal.Zero,
		CreditBalance: decimal.Zero,
		Segment:       entity.SegmentNew,
	}
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddCustomer(c), nil
	})
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Update actualiza un cliente (parcial).
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var updated entity.Customer
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		c, ok := data.FindCustomer(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.Segment != nil {
			switch *in.Segment {
			case entity.SegmentNew, entity.SegmentRegular, entity.SegmentVIP:
				c.Segment = *in.Segment
			default:
				return data, domain.ErrInvalidInput
			}
		}
		updated = c
		return data.WithCustomer(c), nil
	})
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(updated)
	return &out, nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		if _, ok := data.FindCustomer(id); !ok {
			return data, domain.ErrNotFound
		}
		return data.WithoutCustomer(id), nil
	})
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TotalSpent:    c.TotalSpent,
		LoyaltyPoints: c.LoyaltyPoints,
		CreditBalance: c.CreditBalance,
		Segment:       c.Segment,
	}
}
