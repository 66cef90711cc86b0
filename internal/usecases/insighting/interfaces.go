package insighting

import (
	"github.com/victin77/dashboard-love/internal/domain"
)

// Insighter define a interface para obter as estatísticas do dashboard
type Insighter interface {
	// GetDashboardStats agrega as vendas atuais; consultantID vazio agrega todas
	GetDashboardStats(consultantID string) domain.DashboardStats

	// GetCommissionSummary descreve a distribuição das comissões por venda
	GetCommissionSummary(consultantID string) (*domain.CommissionSummary, error)
}
