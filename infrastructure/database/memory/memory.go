// Package memory contém o armazenamento em memória do processo. Nada é persistido entre reinícios.
package memory

import (
	"sync"
	"time"

	"github.com/victin77/dashboard-love/internal/domain"
)

// Tables são as coleções mantidas pelo Store
type Tables struct {
	Consultants    []domain.Consultant
	Sales          []domain.Sale
	SalesUpdatedAt time.Time
}

type Conn interface {
	Read(fn func(*Tables))
	RunInTransaction(fn func(*Tables) error) error
}

// Store guarda as coleções do processo. Cada chamada de Read ou RunInTransaction é uma seção crítica única.
type Store struct {
	mu     sync.RWMutex
	tables Tables
}

func NewStore() *Store {
	return &Store{
		tables: Tables{
			Consultants: make([]domain.Consultant, 0),
			Sales:       make([]domain.Sale, 0),
		},
	}
}

// Read executa fn com o lock de leitura. fn não deve alterar as tabelas nem reter as fatias.
func (s *Store) Read(fn func(*Tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(&s.tables)
}

// RunInTransaction executa fn com o lock de escrita. Se fn retornar erro, as tabelas voltam ao estado anterior.
func (s *Store) RunInTransaction(fn func(*Tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := Tables{
		Consultants:    append([]domain.Consultant(nil), s.tables.Consultants...),
		Sales:          s.tables.Sales,
		SalesUpdatedAt: s.tables.SalesUpdatedAt,
	}

	if err := fn(&working); err != nil {
		return err
	}

	s.tables = working
	return nil
}
