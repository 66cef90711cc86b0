package generating

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victin77/dashboard-love/internal/domain"
)

var referenceNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestService(seed uint64) *Service {
	return NewService(rand.New(rand.NewPCG(seed, seed+1)), func() time.Time { return referenceNow })
}

func testConsultants() []domain.Consultant {
	return []domain.Consultant{
		{ID: "1", Name: "Graziele", Active: true},
		{ID: "2", Name: "Gustavo", Active: true},
		{ID: "3", Name: "Pedro", Active: false},
	}
}

func TestService_GenerateInstallments(t *testing.T) {
	service := newTestService(42)
	saleDate := domain.NewDate(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	installments := service.GenerateInstallments("sale-1-0", 5000, saleDate)

	require.Len(t, installments, domain.InstallmentsPerSale)

	sum := 0.0
	for i, installment := range installments {
		assert.Equal(t, i+1, installment.Number)
		assert.Equal(t, "sale-1-0", installment.SaleID)
		assert.Equal(t, fmt.Sprintf("sale-1-0-inst-%d", i+1), installment.ID)
		assert.InDelta(t, 833.33, installment.Value, 0.01)
		assert.Equal(t, saleDate.AddMonths(i+1), installment.DueDate)
		sum += installment.Value
	}
	assert.InDelta(t, 5000.0, sum, 1e-9)

	// 31/01 + 1 mês transborda para março, como em AddDate
	assert.Equal(t, "2024-03-02", installments[0].DueDate.String())
}

func TestService_GenerateInstallments_StatusRules(t *testing.T) {
	today := domain.NewDate(referenceNow)

	for seed := uint64(1); seed <= 50; seed++ {
		service := newTestService(seed)
		saleDate := today.AddDays(-int(seed * 3))

		for _, installment := range service.GenerateInstallments("sale-x", 600, saleDate) {
			switch installment.Status {
			case domain.InstallmentPaid:
				require.NotNil(t, installment.PaidDate)
				assert.False(t, installment.PaidDate.Before(installment.DueDate.AddDays(-maxDaysPaidEarly)))
				assert.False(t, installment.DueDate.Before(*installment.PaidDate))
			case domain.InstallmentOverdue:
				assert.Nil(t, installment.PaidDate)
				assert.True(t, installment.DueDate.Before(today))
			case domain.InstallmentPending:
				assert.Nil(t, installment.PaidDate)
				assert.False(t, installment.DueDate.Before(today))
			default:
				t.Fatalf("status inesperado: %s", installment.Status)
			}
		}
	}
}

func TestService_GenerateSales(t *testing.T) {
	service := newTestService(7)
	consultants := testConsultants()
	today := domain.NewDate(referenceNow)

	sales := service.GenerateSales(consultants)

	perConsultant := map[string]int{}
	for _, sale := range sales {
		perConsultant[sale.ConsultantID]++

		assert.GreaterOrEqual(t, sale.BaseValue, 50000.0)
		assert.Less(t, sale.BaseValue, 250000.0)
		assert.GreaterOrEqual(t, sale.CommissionPercent, 3.0)
		assert.LessOrEqual(t, sale.CommissionPercent, 7.0)
		assert.GreaterOrEqual(t, sale.Quotas, 1)
		assert.LessOrEqual(t, sale.Quotas, 10)
		assert.True(t, sale.Product.Valid())
		assert.Contains(t, clientNames, sale.ClientName)

		assert.False(t, sale.SaleDate.Before(today.AddDays(-(saleLookbackDays - 1))))
		assert.False(t, today.Before(sale.SaleDate))

		assert.InDelta(t, sale.BaseValue*sale.CommissionPercent/100, sale.TotalCommission, 1e-9)
		assert.InDelta(t, sale.BaseValue/float64(sale.Quotas), sale.UnitValue, 1e-9)
		assert.InDelta(t, sale.BaseValue*0.8, sale.CreditGenerated, 1e-9)

		require.Len(t, sale.Installments, domain.InstallmentsPerSale)
		sum := 0.0
		for _, installment := range sale.Installments {
			sum += installment.Value
			assert.Equal(t, installment.Status == domain.InstallmentPaid, installment.PaidDate != nil)
		}
		assert.InDelta(t, sale.TotalCommission, sum, 1e-6)
	}

	for _, consultant := range consultants {
		count := perConsultant[consultant.ID]
		assert.GreaterOrEqual(t, count, minSalesPerConsultant, consultant.Name)
		assert.LessOrEqual(t, count, maxSalesPerConsultant, consultant.Name)
	}

	for i := 1; i < len(sales); i++ {
		assert.False(t, sales[i-1].SaleDate.Before(sales[i].SaleDate), "vendas devem estar em ordem decrescente de data")
	}
}

func TestService_GenerateSales_SameSeedSameData(t *testing.T) {
	first := newTestService(99).GenerateSales(testConsultants())
	second := newTestService(99).GenerateSales(testConsultants())

	assert.Equal(t, first, second)
}

func TestService_GenerateSales_NoConsultants(t *testing.T) {
	sales := newTestService(1).GenerateSales(nil)

	assert.Empty(t, sales)
}

func TestCommissionWorkedExample(t *testing.T) {
	service := newTestService(3)

	sale := domain.NewSale(domain.SaleParams{
		ID:                "sale-1-0",
		Consultant:        domain.Consultant{ID: "1", Name: "Graziele"},
		SaleDate:          domain.NewDate(referenceNow),
		BaseValue:         100000,
		CommissionPercent: 5,
		Quotas:            2,
	})

	assert.Equal(t, 5000.0, sale.TotalCommission)
	assert.Equal(t, 50000.0, sale.UnitValue)
	assert.Equal(t, 80000.0, sale.CreditGenerated)
	assert.Equal(t, "Graziele", sale.ConsultantName)

	installments := service.GenerateInstallments(sale.ID, sale.TotalCommission, sale.SaleDate)
	require.Len(t, installments, domain.InstallmentsPerSale)
	for _, installment := range installments {
		assert.InDelta(t, 833.33, installment.Value, 0.005)
	}
}

func TestService_GenerateSales_DerivedValues(t *testing.T) {
	sales := newTestService(11).GenerateSales(testConsultants())
	require.NotEmpty(t, sales)

	for _, sale := range sales {
		assert.Equal(t, domain.CommissionFor(sale.BaseValue, sale.CommissionPercent), sale.TotalCommission)
		assert.Equal(t, sale.BaseValue/float64(sale.Quotas), sale.UnitValue)
		assert.Equal(t, sale.BaseValue*domain.CreditRate, sale.CreditGenerated)
	}
}
