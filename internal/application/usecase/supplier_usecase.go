package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/ledger"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
	"github.com/jhoicas/retailpilot-api/pkg/logger"
)

// SupplierUseCase casos de uso del libro de proveedores: CRUD, facturas,
// pagos (con su gasto en la bitácora) y recordatorios de pago.
type SupplierUseCase struct {
	store repository.DataStore
	log   *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(store repository.DataStore, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{store: store, log: log}
}

// List devuelve los proveedores con indicadores de vencimiento contra asOf.
func (uc *SupplierUseCase) List(asOf time.Time) dto.SupplierListResponse {
	data := uc.store.View()
	items := make([]dto.SupplierResponse, 0, len(data.Suppliers))
	for _, s := range data.Suppliers {
		items = append(items, toSupplierResponse(s, asOf))
	}
	return dto.SupplierListResponse{Items: items, Total: len(items)}
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string, asOf time.Time) (*dto.SupplierResponse, error) {
	s, ok := uc.store.View().FindSupplier(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(s, asOf)
	return &out, nil
}

// Create registra un proveedor con saldo en cero.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest, asOf time.Time) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := entity.Supplier{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Contact:    in.Contact,
		Email:      in.Email,
		BalanceDue: decimal.Zero,
		DueDate:    in.DueDate,
	}
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddSupplier(s), nil
	})
	if err != nil {
		return nil, err
	}
	out := toSupplierResponse(s, asOf)
	return &out, nil
}

// Update actualiza datos de contacto. El saldo no se edita aquí: solo cambia
// vía AddBill y RecordPayment.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest, asOf time.Time) (*dto.SupplierResponse, error) {
	var updated entity.Supplier
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		s, ok := data.FindSupplier(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		if in.Name != nil {
			s.Name = *in.Name
		}
		if in.Contact != nil {
			s.Contact = *in.Contact
		}
		if in.Email != nil {
			s.Email = *in.Email
		}
		if in.DueDate != nil {
			d := *in.DueDate
			s.DueDate = &d
		}
		updated = s
		return data.WithSupplier(s), nil
	})
	if err != nil {
		return nil, err
	}
	out := toSupplierResponse(updated, asOf)
	return &out, nil
}

// Delete elimina un proveedor por ID. Las transacciones históricas asociadas
// permanecen en la bitácora.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		if _, ok := data.FindSupplier(id); !ok {
			return data, domain.ErrNotFound
		}
		return data.WithoutSupplier(id), nil
	})
}

// AddBill registra una factura del proveedor: sube el saldo y, si viene
// informada, reemplaza la fecha de vencimiento.
func (uc *SupplierUseCase) AddBill(id string, in dto.AddBillRequest, asOf time.Time) (*dto.SupplierResponse, error) {
	var updated entity.Supplier
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		s, ok := data.FindSupplier(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		out, err := ledger.AddBill(s, ledger.BillInput{Amount: in.Amount, DueDate: in.DueDate})
		if err != nil {
			return data, err
		}
		updated = out
		return data.WithSupplier(out), nil
	})
	if err != nil {
		return nil, err
	}
	out := toSupplierResponse(updated, asOf)
	return &out, nil
}

// RecordPayment aplica un pago al proveedor y agrega el gasto emitido a la
// bitácora en la misma publicación de instantánea: ningún lector puede ver el
// saldo rebajado sin su transacción.
//
// TODO: deduplicar el doble envío del formulario de pago (doble clic); hoy la
// idempotencia es responsabilidad del caller.
func (uc *SupplierUseCase) RecordPayment(id string, in dto.RecordPaymentRequest, asOf time.Time) (*dto.PaymentResponse, error) {
	if !entity.ValidPaymentMode(in.Mode) {
		return nil, domain.ErrInvalidInput
	}

	var (
		updated entity.Supplier
		tx      entity.Transaction
	)
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		s, ok := data.FindSupplier(id)
		if !ok {
			return data, domain.ErrNotFound
		}
		out, emitted, err := ledger.RecordPayment(s, ledger.PaymentInput{
			Amount: in.Amount, Mode: in.Mode, AsOf: asOf,
		})
		if err != nil {
			return data, err
		}
		updated = out
		tx = emitted
		return data.WithSupplier(out).AddTransaction(emitted), nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("supplier", updated.Name).
		Str("amount", in.Amount.String()).
		Str("mode", in.Mode).
		Msg("pago a proveedor registrado")

	return &dto.PaymentResponse{
		Supplier:    toSupplierResponse(updated, asOf),
		Transaction: toTransactionResponse(tx),
	}, nil
}

// Reminders devuelve los proveedores dentro de la ventana de recordatorio
// (vencidos o por vencer en 7 días) con saldo pendiente.
func (uc *SupplierUseCase) Reminders(asOf time.Time) dto.ReminderListResponse {
	data := uc.store.View()
	pending := ledger.NeedingReminder(data.Suppliers, asOf)

	items := make([]dto.SupplierResponse, 0, len(pending))
	for _, s := range pending {
		items = append(items, toSupplierResponse(s, asOf))
	}
	return dto.ReminderListResponse{Items: items, AsOf: asOf}
}

// SendReminders "envía" el recordatorio a cada proveedor de la ventana. Sin
// integración de correo real, el envío se registra en el log estructurado.
func (uc *SupplierUseCase) SendReminders(asOf time.Time) dto.SendRemindersResponse {
	pending := ledger.NeedingReminder(uc.store.View().Suppliers, asOf)

	names := make([]string, 0, len(pending))
	for _, s := range pending {
		names = append(names, s.Name)
		uc.log.Info().
			Str("supplier", s.Name).
			Str("email", s.Email).
			Str("balance_due", s.BalanceDue.String()).
			Bool("overdue", ledger.IsOverdue(s, asOf)).
			Msg("recordatorio de pago enviado")
	}
	return dto.SendRemindersResponse{Sent: len(names), Suppliers: names}
}

func toSupplierResponse(s entity.Supplier, asOf time.Time) dto.SupplierResponse {
	out := dto.SupplierResponse{
		ID:              s.ID,
		Name:            s.Name,
		Contact:         s.Contact,
		Email:           s.Email,
		BalanceDue:      s.BalanceDue,
		LastPaymentDate: s.LastPaymentDate,
		DueDate:         s.DueDate,
		Overdue:         ledger.IsOverdue(s, asOf),
		NeedsReminder:   ledger.NeedsReminder(s, asOf),
	}
	if s.DueDate != nil {
		days := ledger.DaysUntilDue(*s.DueDate, asOf)
		out.DaysUntilDue = &days
	}
	return out
}
