package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victin77/dashboard-love/infrastructure/repository/mocks"
	"github.com/victin77/dashboard-love/internal/domain"
	"go.uber.org/mock/gomock"
)

// 15 de junho de 2024
var referenceNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func date(year int, month time.Month, day int) domain.Date {
	return domain.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func newSale(id, consultantID string, saleDate domain.Date, commission float64, statuses ...domain.InstallmentStatus) domain.Sale {
	sale := domain.Sale{
		ID:              id,
		ConsultantID:    consultantID,
		SaleDate:        saleDate,
		BaseValue:       commission * 20,
		TotalCommission: commission,
		CreditGenerated: commission * 20 * domain.CreditRate,
	}

	for i, status := range statuses {
		installment := domain.Installment{
			SaleID: id,
			Number: i + 1,
			Value:  commission / domain.InstallmentsPerSale,
			Status: status,
		}
		if status == domain.InstallmentPaid {
			paid := saleDate
			installment.PaidDate = &paid
		}
		sale.Installments = append(sale.Installments, installment)
	}

	return sale
}

func fixtureSales() []domain.Sale {
	paid, pending, overdue := domain.InstallmentPaid, domain.InstallmentPending, domain.InstallmentOverdue

	return []domain.Sale{
		newSale("s1", "1", date(2024, 6, 15), 600, paid, paid, pending, pending, pending, pending),
		newSale("s2", "2", date(2024, 6, 15), 1200, paid, pending, pending, pending, pending, pending),
		newSale("s3", "1", date(2024, 6, 8), 300, paid, overdue, pending, pending, pending, pending),
		newSale("s4", "2", date(2024, 6, 7), 900, overdue, overdue, pending, pending, pending, pending),
		newSale("s5", "1", date(2024, 6, 1), 1800, paid, paid, paid, overdue, pending, pending),
		newSale("s6", "2", date(2024, 5, 31), 6000, paid, paid, paid, paid, overdue, overdue),
	}
}

func TestCalculateDashboardStats_AllSales(t *testing.T) {
	stats := CalculateDashboardStats(fixtureSales(), "", referenceNow)

	assert.Equal(t, 2, stats.SalesToday)
	assert.InDelta(t, 1800.0, stats.CommissionToday, 1e-9)

	// semana: a partir de 08/06, inclusive
	assert.Equal(t, 3, stats.SalesWeek)

	// mês: a partir de 01/06, inclusive
	assert.InDelta(t, 600.0+1200+300+900+1800, stats.CommissionMonth, 1e-9)

	assert.InDelta(t, 10800.0, stats.TotalCommission, 1e-9)
	assert.InDelta(t, 10800.0*20*0.8, stats.TotalCredit, 1e-6)

	assert.Equal(t, domain.InstallmentStats{Paid: 11, Pending: 19, Overdue: 6}, stats.InstallmentStats)
	assert.Equal(t, 19, stats.PendingCount)
	assert.Equal(t, 6, stats.OverdueCount)

	assert.InDelta(t, stats.TotalCommission, stats.TotalPaid+stats.TotalPending+stats.TotalOverdue, 1e-6)
	assert.InDelta(t, 100.0*2+200+50+300*3+1000*4, stats.TotalPaid, 1e-6)
	assert.InDelta(t, 50.0+150*2+300+1000*2, stats.TotalOverdue, 1e-6)
}

func TestCalculateDashboardStats_ScopedEqualsPrefiltered(t *testing.T) {
	sales := fixtureSales()

	for _, consultantID := range []string{"1", "2", "unknown"} {
		t.Run(consultantID, func(t *testing.T) {
			prefiltered := make([]domain.Sale, 0)
			for _, sale := range sales {
				if sale.ConsultantID == consultantID {
					prefiltered = append(prefiltered, sale)
				}
			}

			assert.Equal(t,
				CalculateDashboardStats(prefiltered, "", referenceNow),
				CalculateDashboardStats(sales, consultantID, referenceNow),
			)
		})
	}
}

func TestCalculateDashboardStats_Windows(t *testing.T) {
	tests := []struct {
		name          string
		saleDate      domain.Date
		now           time.Time
		expectToday   bool
		expectWeek    bool
		expectInMonth bool
	}{
		{
			name:          "Venda de hoje conta em todas as janelas",
			saleDate:      date(2024, 6, 15),
			now:           referenceNow,
			expectToday:   true,
			expectWeek:    true,
			expectInMonth: true,
		},
		{
			name:          "Venda de exatamente 7 dias atrás ainda conta na semana",
			saleDate:      date(2024, 6, 8),
			now:           referenceNow,
			expectWeek:    true,
			expectInMonth: true,
		},
		{
			name:          "Venda de 8 dias atrás fica fora da semana",
			saleDate:      date(2024, 6, 7),
			now:           referenceNow,
			expectInMonth: true,
		},
		{
			name:          "Último dia do mês anterior fica fora do mês",
			saleDate:      date(2024, 5, 31),
			now:           referenceNow,
			expectWeek:    false,
			expectInMonth: false,
		},
		{
			name:          "No dia 3 a semana alcança o mês anterior",
			saleDate:      date(2024, 5, 28),
			now:           time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			expectWeek:    true,
			expectInMonth: false,
		},
		{
			name:          "Virada de ano",
			saleDate:      date(2024, 1, 1),
			now:           time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			expectToday:   true,
			expectWeek:    true,
			expectInMonth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := []domain.Sale{newSale("s", "1", tt.saleDate, 600)}

			stats := CalculateDashboardStats(sales, "", tt.now)

			assert.Equal(t, tt.expectToday, stats.SalesToday == 1)
			assert.Equal(t, tt.expectWeek, stats.SalesWeek == 1)
			assert.Equal(t, tt.expectInMonth, stats.CommissionMonth == 600)
		})
	}
}

func TestCalculateDashboardStats_Empty(t *testing.T) {
	assert.Equal(t, domain.DashboardStats{}, CalculateDashboardStats(nil, "", referenceNow))
}

func TestInstallmentProgress(t *testing.T) {
	sale := fixtureSales()[4]

	assert.Equal(t, domain.InstallmentStats{Paid: 3, Pending: 2, Overdue: 1}, InstallmentProgress(sale))
}

func TestSummarizeCommissions(t *testing.T) {
	summary, err := SummarizeCommissions(fixtureSales(), "1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 2700.0, summary.Sum, 1e-9)
	assert.InDelta(t, 900.0, summary.Mean, 1e-9)
	assert.InDelta(t, 600.0, summary.Median, 1e-9)
	assert.InDelta(t, 300.0, summary.Min, 1e-9)
	assert.InDelta(t, 1800.0, summary.Max, 1e-9)
}

func TestSummarizeCommissions_Empty(t *testing.T) {
	summary, err := SummarizeCommissions(fixtureSales(), "unknown")

	require.NoError(t, err)
	assert.Equal(t, &domain.CommissionSummary{}, summary)
}

func TestService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().ListSales().Return(fixtureSales())

	service := NewService(mockSaleRepo, func() time.Time { return referenceNow })

	stats := service.GetDashboardStats("2")

	assert.Equal(t, 1, stats.SalesToday)
	assert.InDelta(t, 1200.0, stats.CommissionToday, 1e-9)
	assert.InDelta(t, 8100.0, stats.TotalCommission, 1e-9)
}
