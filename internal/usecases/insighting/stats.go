package insighting

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/victin77/dashboard-love/internal/domain"
	"github.com/victin77/dashboard-love/pkg/utils"
)

const weekWindowDays = 7

// CalculateDashboardStats reduz as vendas às estatísticas do dashboard.
// Não tem efeitos colaterais; o resultado depende apenas das vendas, do consultor e de now,
// que define as janelas de hoje, últimos 7 dias e mês corrente.
func CalculateDashboardStats(sales []domain.Sale, consultantID string, now time.Time) domain.DashboardStats {
	today := domain.NewDate(now)
	weekAgo := domain.NewDate(now.AddDate(0, 0, -weekWindowDays))
	monthStart := today.FirstOfMonth()

	var result domain.DashboardStats

	for _, sale := range sales {
		if consultantID != "" && sale.ConsultantID != consultantID {
			continue
		}

		if sale.SaleDate.Equal(today) {
			result.SalesToday++
			result.CommissionToday += sale.TotalCommission
		}

		if sale.SaleDate.OnOrAfter(weekAgo) {
			result.SalesWeek++
		}

		if sale.SaleDate.OnOrAfter(monthStart) {
			result.CommissionMonth += sale.TotalCommission
		}

		result.TotalCommission += sale.TotalCommission
		result.TotalCredit += sale.CreditGenerated

		for _, installment := range sale.Installments {
			result.InstallmentStats.Add(installment.Status)

			switch installment.Status {
			case domain.InstallmentPaid:
				result.TotalPaid += installment.Value
			case domain.InstallmentPending:
				result.TotalPending += installment.Value
			case domain.InstallmentOverdue:
				result.TotalOverdue += installment.Value
			}
		}
	}

	result.PendingCount = result.InstallmentStats.Pending
	result.OverdueCount = result.InstallmentStats.Overdue

	return result
}

// InstallmentProgress conta as parcelas de uma venda por status
func InstallmentProgress(sale domain.Sale) domain.InstallmentStats {
	var progress domain.InstallmentStats
	for _, installment := range sale.Installments {
		progress.Add(installment.Status)
	}
	return progress
}

// SummarizeCommissions calcula soma, média, mediana, mínimo e máximo das comissões por venda
func SummarizeCommissions(sales []domain.Sale, consultantID string) (*domain.CommissionSummary, error) {
	commissions := make(stats.Float64Data, 0, len(sales))
	for _, sale := range sales {
		if consultantID != "" && sale.ConsultantID != consultantID {
			continue
		}
		commissions = append(commissions, sale.TotalCommission)
	}

	if len(commissions) == 0 {
		return &domain.CommissionSummary{}, nil
	}

	summary := &domain.CommissionSummary{Count: len(commissions)}

	var err error
	if summary.Sum, err = commissions.Sum(); err != nil {
		return nil, errors.Wrap(err, "soma das comissões")
	}
	if summary.Mean, err = commissions.Mean(); err != nil {
		return nil, errors.Wrap(err, "média das comissões")
	}
	if summary.Median, err = commissions.Median(); err != nil {
		return nil, errors.Wrap(err, "mediana das comissões")
	}
	if summary.Min, err = commissions.Min(); err != nil {
		return nil, errors.Wrap(err, "menor comissão")
	}
	if summary.Max, err = commissions.Max(); err != nil {
		return nil, errors.Wrap(err, "maior comissão")
	}

	summary.Mean = utils.RoundMoney(summary.Mean)
	summary.Median = utils.RoundMoney(summary.Median)

	return summary, nil
}
