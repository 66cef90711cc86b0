// Package selling expõe a coleção de vendas: listagem com filtros, detalhe, exportação e regeneração
package selling

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/internal/usecases/generating"
	"github.com/victin77/dashboard-love/internal/usecases/insighting"
)

// filterAll é o valor que o frontend envia para "sem filtro"
const filterAll = "all"

type SalesService interface {
	ListSales(filter domain.SalesFilter) []domain.Sale
	GetSale(id string) (*domain.Sale, error)
	GenerateInitialSales() int
	RefreshSales(ctx context.Context) (int, error)
	ExportSalesCSV(w io.Writer, filter domain.SalesFilter) error
	LastUpdate() time.Time
}

type Service struct {
	saleRepo       repository.SaleRepository
	consultantRepo repository.ConsultantRepository
	generator      generating.Generator
	refreshDelay   time.Duration
	now            func() time.Time
}

func NewService(
	saleRepo repository.SaleRepository,
	consultantRepo repository.ConsultantRepository,
	generator generating.Generator,
	refreshDelay time.Duration,
	now func() time.Time,
) SalesService {
	if now == nil {
		now = time.Now
	}

	return &Service{
		saleRepo:       saleRepo,
		consultantRepo: consultantRepo,
		generator:      generator,
		refreshDelay:   refreshDelay,
		now:            now,
	}
}

func (s *Service) ListSales(filter domain.SalesFilter) []domain.Sale {
	return FilterSales(s.saleRepo.ListSales(), filter)
}

func (s *Service) GetSale(id string) (*domain.Sale, error) {
	sale, found := s.saleRepo.GetSaleByID(id)
	if !found {
		return nil, errors.Wrapf(ErrSaleNotFound, "id %s", id)
	}
	return sale, nil
}

// GenerateInitialSales popula a coleção na inicialização, sem o atraso artificial
func (s *Service) GenerateInitialSales() int {
	return s.replace()
}

// RefreshSales espera o atraso configurado e substitui todas as vendas por um novo conjunto.
// Se o contexto for cancelado durante a espera, nada é alterado.
func (s *Service) RefreshSales(ctx context.Context) (int, error) {
	if s.refreshDelay > 0 {
		timer := time.NewTimer(s.refreshDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return 0, errors.Wrap(ErrRefreshCancelled, ctx.Err().Error())
		}
	}

	return s.replace(), nil
}

func (s *Service) replace() int {
	consultants := s.consultantRepo.ListConsultants()
	sales := s.generator.GenerateSales(consultants)

	s.saleRepo.ReplaceSales(sales, s.now())

	logrus.WithFields(logrus.Fields{
		"consultants": len(consultants),
		"sales":       len(sales),
	}).Info("Vendas geradas")

	return len(sales)
}

// ExportSalesCSV escreve uma linha por venda filtrada
func (s *Service) ExportSalesCSV(w io.Writer, filter domain.SalesFilter) error {
	sales := s.ListSales(filter)

	rows := make([]*domain.SaleExportRow, 0, len(sales))
	for _, sale := range sales {
		progress := insighting.InstallmentProgress(sale)
		rows = append(rows, &domain.SaleExportRow{
			ID:                sale.ID,
			SaleDate:          sale.SaleDate,
			ConsultantName:    sale.ConsultantName,
			ClientName:        sale.ClientName,
			Product:           sale.Product,
			BaseValue:         sale.BaseValue,
			CommissionPercent: sale.CommissionPercent,
			TotalCommission:   sale.TotalCommission,
			Quotas:            sale.Quotas,
			UnitValue:         sale.UnitValue,
			CreditGenerated:   sale.CreditGenerated,
			HasInsurance:      sale.HasInsurance,
			PaidInstallments:  progress.Paid,
			Pending:           progress.Pending,
			Overdue:           progress.Overdue,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return errors.Wrap(err, "erro ao gerar CSV de vendas")
	}

	return nil
}

func (s *Service) LastUpdate() time.Time {
	return s.saleRepo.LastUpdate()
}

// FilterSales aplica escopo, busca, produto e consultor, preservando a ordem de entrada
func FilterSales(sales []domain.Sale, filter domain.SalesFilter) []domain.Sale {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if filter.ScopeConsultantID != "" && sale.ConsultantID != filter.ScopeConsultantID {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(sale.ClientName), search) &&
			!strings.Contains(strings.ToLower(sale.ConsultantName), search) {
			continue
		}

		if isActiveFilter(filter.Product) && string(sale.Product) != filter.Product {
			continue
		}

		if isActiveFilter(filter.ConsultantID) && sale.ConsultantID != filter.ConsultantID {
			continue
		}

		filtered = append(filtered, sale)
	}

	return filtered
}

func isActiveFilter(value string) bool {
	return value != "" && value != filterAll
}
