// Package migration carrega os dados iniciais do armazenamento em memória
package migration

import (
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/infrastructure/database/memory"
	"github.com/victin77/dashboard-love/internal/domain"
)

// InitialConsultants são os consultores de demonstração carregados na inicialização
func InitialConsultants() []domain.Consultant {
	return []domain.Consultant{
		{ID: "1", Name: "Graziele", Email: "graziele@comissoes.com", Password: "graziele123", Active: true, TotalSales: 45, TotalCommission: 125000},
		{ID: "2", Name: "Gustavo", Email: "gustavo@comissoes.com", Password: "gustavo123", Active: true, TotalSales: 38, TotalCommission: 98000},
		{ID: "3", Name: "Pedro", Email: "pedro@comissoes.com", Password: "pedro123", Active: true, TotalSales: 52, TotalCommission: 145000},
		{ID: "4", Name: "Poli", Email: "poli@comissoes.com", Password: "poli123", Active: true, TotalSales: 29, TotalCommission: 78000},
		{ID: "5", Name: "Marcelo", Email: "marcelo@comissoes.com", Password: "marcelo123", Active: true, TotalSales: 41, TotalCommission: 112000},
		{ID: "6", Name: "Victor", Email: "victor@comissoes.com", Password: "victor123", Active: true, TotalSales: 35, TotalCommission: 89000},
	}
}

// SeedConsultants substitui a coleção de consultores pelos consultores iniciais
func SeedConsultants(store memory.Conn) error {
	consultants := InitialConsultants()

	err := store.RunInTransaction(func(tables *memory.Tables) error {
		tables.Consultants = consultants
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("consultants", len(consultants)).Info("Consultores iniciais carregados")
	return nil
}
