package ranking

import (
	"sort"

	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/internal/domain"
)

type RankingService interface {
	GetConsultantRanking() []domain.Consultant
	GetRankingResponse() *domain.ConsultantRankingResponse
}

type ConsultantRankingService struct {
	consultantRepo repository.ConsultantRepository
	saleRepo       repository.SaleRepository
}

func NewConsultantRankingService(consultantRepo repository.ConsultantRepository, saleRepo repository.SaleRepository) RankingService {
	return &ConsultantRankingService{
		consultantRepo: consultantRepo,
		saleRepo:       saleRepo,
	}
}

// GetConsultantRanking devolve os consultores ativos do maior para o menor totalCommission.
// Empates mantêm a ordem de cadastro.
func (s *ConsultantRankingService) GetConsultantRanking() []domain.Consultant {
	return RankConsultants(s.consultantRepo.ListConsultants())
}

func (s *ConsultantRankingService) GetRankingResponse() *domain.ConsultantRankingResponse {
	ranked := s.GetConsultantRanking()

	items := make([]domain.ConsultantRankingItem, 0, len(ranked))
	for i, consultant := range ranked {
		items = append(items, domain.ConsultantRankingItem{
			Position:        i + 1,
			ConsultantID:    consultant.ID,
			Name:            consultant.Name,
			TotalSales:      consultant.TotalSales,
			TotalCommission: consultant.TotalCommission,
		})
	}

	return &domain.ConsultantRankingResponse{
		Ranking:    items,
		LastUpdate: s.saleRepo.LastUpdate(),
	}
}

// RankConsultants filtra os ativos e ordena de forma estável pelo totalCommission armazenado
func RankConsultants(consultants []domain.Consultant) []domain.Consultant {
	active := make([]domain.Consultant, 0, len(consultants))
	for _, consultant := range consultants {
		if consultant.Active {
			active = append(active, consultant)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].TotalCommission > active[j].TotalCommission
	})

	return active
}
