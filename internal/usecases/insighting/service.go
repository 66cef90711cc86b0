package insighting

import (
	"time"

	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/internal/domain"
)

type Service struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewService cria o serviço de estatísticas. As janelas de data usam o relógio de parede,
// então o mesmo conjunto de vendas gera resultados diferentes em dias diferentes.
func NewService(saleRepo repository.SaleRepository, now func() time.Time) Insighter {
	if now == nil {
		now = time.Now
	}

	return &Service{
		saleRepo: saleRepo,
		now:      now,
	}
}

func (s *Service) GetDashboardStats(consultantID string) domain.DashboardStats {
	return CalculateDashboardStats(s.saleRepo.ListSales(), consultantID, s.now())
}

func (s *Service) GetCommissionSummary(consultantID string) (*domain.CommissionSummary, error) {
	return SummarizeCommissions(s.saleRepo.ListSales(), consultantID)
}
