package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/application/dto"
	"github.com/jhoicas/retailpilot-api/internal/domain"
	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// FinanceUseCase casos de uso de caja: bitácora de transacciones, gastos
// manuales y resumen financiero.
type FinanceUseCase struct {
	store repository.DataStore
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(store repository.DataStore) *FinanceUseCase {
	return &FinanceUseCase{store: store}
}

// Transactions lista la bitácora, opcionalmente filtrada por tipo
// (Sale, Expense, Purchase). Más reciente primero.
func (uc *FinanceUseCase) Transactions(txType string) dto.TransactionListResponse {
	data := uc.store.View()
	items := make([]dto.TransactionResponse, 0, len(data.Transactions))
	for _, tx := range data.Transactions {
		if txType != "" && tx.Type != txType {
			continue
		}
		items = append(items, toTransactionResponse(tx))
	}
	return dto.TransactionListResponse{Items: items, Total: len(items)}
}

// AddExpense registra un gasto manual en la bitácora.
func (uc *FinanceUseCase) AddExpense(in dto.CreateExpenseRequest, asOf time.Time) (*dto.TransactionResponse, error) {
	if in.Description == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMode(in.PaymentMode) {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = entity.CategoryOperational
	}
	date := asOf
	if in.Date != nil {
		date = *in.Date
	}

	tx := entity.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        entity.TransactionExpense,
		Amount:      in.Amount,
		Description: in.Description,
		PaymentMode: in.PaymentMode,
		Category:    category,
		Status:      entity.StatusCompleted,
	}
	err := uc.store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddTransaction(tx), nil
	})
	if err != nil {
		return nil, err
	}
	out := toTransactionResponse(tx)
	return &out, nil
}

// Summary calcula ingresos, gastos, neto y la distribución del gasto por
// categoría (ordenada de mayor a menor).
func (uc *FinanceUseCase) Summary() dto.FinanceSummaryResponse {
	data := uc.store.View()

	income := decimal.Zero
	expenses := decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for _, tx := range data.Transactions {
		switch tx.Type {
		case entity.TransactionSale:
			income = income.Add(tx.Amount)
		case entity.TransactionExpense:
			expenses = expenses.Add(tx.Amount)
			category := tx.Category
			if category == "" {
				category = "Other"
			}
			byCategory[category] = byCategory[category].Add(tx.Amount)
		}
	}

	categories := make([]dto.CategoryAmountDTO, 0, len(byCategory))
	for name, amount := range byCategory {
		categories = append(categories, dto.CategoryAmountDTO{Category: name, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Category < categories[j].Category
		}
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return dto.FinanceSummaryResponse{
		TotalIncome:       income,
		TotalExpenses:     expenses,
		Net:               income.Sub(expenses),
		ExpenseByCategory: categories,
	}
}

func toTransactionResponse(tx entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
		PaymentMode: tx.PaymentMode,
		PartyName:   tx.PartyName,
		Category:    tx.Category,
		Status:      tx.Status,
		ReceiptURL:  tx.ReceiptURL,
	}
}
