// Package memory implementa el almacén de estado en memoria del dashboard.
// Sin persistencia: el estado vive lo que vive el proceso y se parte de una
// instantánea semilla.
package memory

import (
	"sync"

	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// Store guarda la instantánea vigente y serializa las mutaciones con un mutex.
// Las lecturas devuelven la instantánea tal cual: como los Dataset se tratan
// como inmutables, no hace falta copiar en View.
type Store struct {
	mu   sync.RWMutex
	data repository.Dataset
}

var _ repository.DataStore = (*Store)(nil)

// NewStore construye un Store con la instantánea inicial dada.
func NewStore(initial repository.Dataset) *Store {
	return &Store{data: initial}
}

// View devuelve la instantánea vigente.
func (s *Store) View() repository.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Apply ejecuta fn sobre la instantánea vigente y publica el resultado de
// forma atómica. Si fn devuelve error no se publica nada.
func (s *Store) Apply(fn func(repository.Dataset) (repository.Dataset, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.data)
	if err != nil {
		return err
	}
	s.data = next
	return nil
}
