package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// ────────────────────────────────────────────────────────────────────────────
// Apply publica de forma atómica
// ────────────────────────────────────────────────────────────────────────────

func TestApply_PublicaInstantaneaNueva(t *testing.T) {
	store := NewStore(repository.Dataset{})

	err := store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		return data.AddSupplier(entity.Supplier{ID: "s1", Name: "Acme", BalanceDue: decimal.Zero}), nil
	})
	require.NoError(t, err)

	data := store.View()
	require.Len(t, data.Suppliers, 1)
	assert.Equal(t, "Acme", data.Suppliers[0].Name)
}

func TestApply_ErrorNoPublicaNada(t *testing.T) {
	seed := Seed(time.Now())
	store := NewStore(seed)
	boom := errors.New("boom")

	err := store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		data = data.WithoutSupplier("1")
		return data, boom
	})
	require.ErrorIs(t, err, boom)

	// El estado queda exactamente como antes del Apply fallido.
	assert.Len(t, store.View().Suppliers, len(seed.Suppliers))
}

// ────────────────────────────────────────────────────────────────────────────
// Copy-on-write: las instantáneas viejas no ven mutaciones posteriores
// ────────────────────────────────────────────────────────────────────────────

func TestView_InstantaneaViejaNoCambia(t *testing.T) {
	store := NewStore(Seed(time.Now()))
	before := store.View()
	beforeBalance := before.Suppliers[0].BalanceDue

	err := store.Apply(func(data repository.Dataset) (repository.Dataset, error) {
		s := data.Suppliers[0]
		s.BalanceDue = s.BalanceDue.Add(decimal.NewFromInt(999))
		return data.WithSupplier(s), nil
	})
	require.NoError(t, err)

	assert.True(t, before.Suppliers[0].BalanceDue.Equal(beforeBalance),
		"la instantánea anterior no debe reflejar el nuevo saldo")
	assert.False(t, store.View().Suppliers[0].BalanceDue.Equal(beforeBalance))
}

func TestSeed_DatosConsistentes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	data := Seed(now)

	require.Len(t, data.Products, 6)
	require.Len(t, data.Suppliers, 3)
	require.Len(t, data.Transactions, 4)

	headset, ok := data.FindProduct("1")
	require.True(t, ok)
	assert.Len(t, headset.Batches, 3)
	assert.True(t, headset.Batches[0].Date.Before(headset.Batches[2].Date))

	// KeyMasters vence en 5 días: cae dentro de la ventana de recordatorio.
	km, ok := data.FindSupplier("3")
	require.True(t, ok)
	require.NotNil(t, km.DueDate)
	assert.True(t, km.BalanceDue.IsPositive())
}
