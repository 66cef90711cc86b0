package repository

import (
	"github.com/victin77/dashboard-love/infrastructure/database/memory"
	"github.com/victin77/dashboard-love/internal/domain"
)

type ConsultantRepository interface {
	ListConsultants() []domain.Consultant
	GetConsultantByID(id string) (*domain.Consultant, bool)
	CreateConsultant(consultant domain.Consultant) domain.Consultant
	DeleteConsultant(id string) bool
	UpdateConsultant(id string, update func(*domain.Consultant)) bool
}

type consultantRepository struct {
	conn memory.Conn
}

func NewConsultantRepository(conn memory.Conn) ConsultantRepository {
	return &consultantRepository{
		conn: conn,
	}
}

// ListConsultants retorna uma cópia da coleção na ordem de cadastro
func (r *consultantRepository) ListConsultants() []domain.Consultant {
	var consultants []domain.Consultant
	r.conn.Read(func(tables *memory.Tables) {
		consultants = make([]domain.Consultant, len(tables.Consultants))
		copy(consultants, tables.Consultants)
	})
	return consultants
}

func (r *consultantRepository) GetConsultantByID(id string) (*domain.Consultant, bool) {
	var (
		consultant domain.Consultant
		found      bool
	)

	r.conn.Read(func(tables *memory.Tables) {
		index := indexOfConsultant(tables.Consultants, id)
		if index < 0 {
			return
		}
		consultant = tables.Consultants[index]
		found = true
	})

	if !found {
		return nil, false
	}
	return &consultant, true
}

func (r *consultantRepository) CreateConsultant(consultant domain.Consultant) domain.Consultant {
	_ = r.conn.RunInTransaction(func(tables *memory.Tables) error {
		tables.Consultants = append(tables.Consultants, consultant)
		return nil
	})
	return consultant
}

// DeleteConsultant remove o consultor; retorna false se o id não existir
func (r *consultantRepository) DeleteConsultant(id string) bool {
	deleted := false
	_ = r.conn.RunInTransaction(func(tables *memory.Tables) error {
		index := indexOfConsultant(tables.Consultants, id)
		if index < 0 {
			return nil
		}
		tables.Consultants = append(tables.Consultants[:index], tables.Consultants[index+1:]...)
		deleted = true
		return nil
	})
	return deleted
}

// UpdateConsultant aplica update sobre o consultor dentro da mesma seção crítica
func (r *consultantRepository) UpdateConsultant(id string, update func(*domain.Consultant)) bool {
	updated := false
	_ = r.conn.RunInTransaction(func(tables *memory.Tables) error {
		index := indexOfConsultant(tables.Consultants, id)
		if index < 0 {
			return nil
		}
		update(&tables.Consultants[index])
		updated = true
		return nil
	})
	return updated
}

func indexOfConsultant(consultants []domain.Consultant, id string) int {
	for i := range consultants {
		if consultants[i].ID == id {
			return i
		}
	}
	return -1
}
