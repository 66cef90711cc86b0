package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victin77/dashboard-love/infrastructure/database/memory"
	"github.com/victin77/dashboard-love/infrastructure/migration"
	"github.com/victin77/dashboard-love/internal/domain"
)

func TestConsultantRepository(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, migration.SeedConsultants(store))
	repo := NewConsultantRepository(store)

	t.Run("lista na ordem de cadastro", func(t *testing.T) {
		consultants := repo.ListConsultants()
		require.Len(t, consultants, 6)
		assert.Equal(t, "1", consultants[0].ID)
		assert.Equal(t, "6", consultants[5].ID)
	})

	t.Run("cópia não altera o armazenamento", func(t *testing.T) {
		consultants := repo.ListConsultants()
		consultants[0].Name = "Outro"

		found, ok := repo.GetConsultantByID("1")
		require.True(t, ok)
		assert.Equal(t, "Graziele", found.Name)
	})

	t.Run("cria, atualiza e remove", func(t *testing.T) {
		repo.CreateConsultant(domain.Consultant{ID: "7", Name: "Ana", Active: true})

		assert.True(t, repo.UpdateConsultant("7", func(c *domain.Consultant) { c.Active = false }))
		found, ok := repo.GetConsultantByID("7")
		require.True(t, ok)
		assert.False(t, found.Active)

		assert.True(t, repo.DeleteConsultant("7"))
		assert.False(t, repo.DeleteConsultant("7"))
		assert.False(t, repo.UpdateConsultant("7", func(c *domain.Consultant) {}))

		_, ok = repo.GetConsultantByID("7")
		assert.False(t, ok)
		assert.Len(t, repo.ListConsultants(), 6)
	})
}

func TestSaleRepository(t *testing.T) {
	store := memory.NewStore()
	repo := NewSaleRepository(store)

	assert.Empty(t, repo.ListSales())
	assert.True(t, repo.LastUpdate().IsZero())

	updatedAt := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	sales := []domain.Sale{
		{ID: "sale-1-0", ConsultantID: "1", Installments: []domain.Installment{{ID: "sale-1-0-inst-1", Number: 1}}},
		{ID: "sale-2-0", ConsultantID: "2"},
	}
	repo.ReplaceSales(sales, updatedAt)

	// alteração na fatia original não vaza para o armazenamento
	sales[0].Installments[0].Number = 99

	found, ok := repo.GetSaleByID("sale-1-0")
	require.True(t, ok)
	assert.Equal(t, 1, found.Installments[0].Number)
	assert.Equal(t, updatedAt, repo.LastUpdate())

	_, ok = repo.GetSaleByID("nao-existe")
	assert.False(t, ok)

	repo.ReplaceSales([]domain.Sale{{ID: "sale-3-0"}}, updatedAt.Add(time.Hour))

	listed := repo.ListSales()
	require.Len(t, listed, 1)
	assert.Equal(t, "sale-3-0", listed[0].ID)
}
