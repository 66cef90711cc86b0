// Package generating produz o conjunto de dados de demonstração: vendas e parcelas de comissão
package generating

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/victin77/dashboard-love/internal/domain"
)

const (
	minSalesPerConsultant = 3
	maxSalesPerConsultant = 10
	minBaseValue          = 50000
	baseValueRange        = 200000
	minCommissionPercent  = 3
	maxCommissionPercent  = 7
	maxQuotas             = 10
	saleLookbackDays      = 180
	paidProbability       = 0.5
	insuranceProbability  = 0.5
	maxDaysPaidEarly      = 5
)

var clientNames = []string{
	"João Silva", "Maria Santos", "Carlos Oliveira", "Ana Costa", "Paulo Ferreira",
	"Lucia Almeida", "Roberto Souza", "Fernanda Lima", "Marcos Pereira", "Juliana Rocha",
	"André Mendes", "Camila Ribeiro", "Ricardo Gomes", "Patricia Martins", "Bruno Carvalho",
}

type Generator interface {
	GenerateInstallments(saleID string, totalCommission float64, saleDate domain.Date) []domain.Installment
	GenerateSales(consultants []domain.Consultant) []domain.Sale
}

// Service gera os dados a partir de uma fonte aleatória e de um relógio injetados
type Service struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewService(rnd *rand.Rand, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		rnd: rnd,
		now: now,
	}
}

// NewSeededService cria o gerador com semente fixa; seed 0 usa o relógio como semente
func NewSeededService(seed uint64, now func() time.Time) *Service {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewService(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now)
}

// GenerateInstallments divide a comissão em seis parcelas mensais a partir da data da venda
func (s *Service) GenerateInstallments(saleID string, totalCommission float64, saleDate domain.Date) []domain.Installment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generateInstallments(saleID, totalCommission, saleDate, domain.NewDate(s.now()))
}

func (s *Service) generateInstallments(saleID string, totalCommission float64, saleDate, today domain.Date) []domain.Installment {
	value := totalCommission / domain.InstallmentsPerSale
	installments := make([]domain.Installment, 0, domain.InstallmentsPerSale)

	for i := 0; i < domain.InstallmentsPerSale; i++ {
		dueDate := saleDate.AddMonths(i + 1)
		isPaid := s.rnd.Float64() > paidProbability

		installment := domain.Installment{
			ID:      fmt.Sprintf("%s-inst-%d", saleID, i+1),
			SaleID:  saleID,
			Number:  i + 1,
			Value:   value,
			DueDate: dueDate,
		}

		switch {
		case isPaid:
			paidDate := dueDate.AddDays(-s.rnd.IntN(maxDaysPaidEarly + 1))
			installment.Status = domain.InstallmentPaid
			installment.PaidDate = &paidDate
		case dueDate.Before(today):
			installment.Status = domain.InstallmentOverdue
		default:
			installment.Status = domain.InstallmentPending
		}

		installments = append(installments, installment)
	}

	return installments
}

// GenerateSales gera de 3 a 10 vendas para cada consultor, ordenadas da mais recente para a mais antiga
func (s *Service) GenerateSales(consultants []domain.Consultant) []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := domain.NewDate(s.now())
	sales := make([]domain.Sale, 0, len(consultants)*maxSalesPerConsultant)

	for _, consultant := range consultants {
		numSales := s.rnd.IntN(maxSalesPerConsultant-minSalesPerConsultant+1) + minSalesPerConsultant

		for i := 0; i < numSales; i++ {
			saleID := fmt.Sprintf("sale-%s-%d", consultant.ID, i)
			sale := domain.NewSale(domain.SaleParams{
				ID:                saleID,
				Consultant:        consultant,
				BaseValue:         float64(s.rnd.IntN(baseValueRange) + minBaseValue),
				CommissionPercent: float64(s.rnd.IntN(maxCommissionPercent-minCommissionPercent+1) + minCommissionPercent),
				Quotas:            s.rnd.IntN(maxQuotas) + 1,
				SaleDate:          today.AddDays(-s.rnd.IntN(saleLookbackDays)),
				ClientName:        clientNames[s.rnd.IntN(len(clientNames))],
				Product:           domain.Products[s.rnd.IntN(len(domain.Products))],
				HasInsurance:      s.rnd.Float64() > insuranceProbability,
			})
			sale.Installments = s.generateInstallments(saleID, sale.TotalCommission, sale.SaleDate, today)

			sales = append(sales, sale)
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[j].SaleDate.Before(sales[i].SaleDate)
	})

	return sales
}
