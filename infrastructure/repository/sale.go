package repository

import (
	"time"

	"github.com/victin77/dashboard-love/infrastructure/database/memory"
	"github.com/victin77/dashboard-love/internal/domain"
)

type SaleRepository interface {
	ListSales() []domain.Sale
	GetSaleByID(id string) (*domain.Sale, bool)
	ReplaceSales(sales []domain.Sale, updatedAt time.Time)
	LastUpdate() time.Time
}

type saleRepository struct {
	conn memory.Conn
}

func NewSaleRepository(conn memory.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSales retorna cópias das vendas, ordenadas como foram gravadas
func (r *saleRepository) ListSales() []domain.Sale {
	var sales []domain.Sale
	r.conn.Read(func(tables *memory.Tables) {
		sales = make([]domain.Sale, len(tables.Sales))
		for i, sale := range tables.Sales {
			sales[i] = sale.Clone()
		}
	})
	return sales
}

func (r *saleRepository) GetSaleByID(id string) (*domain.Sale, bool) {
	var (
		sale  domain.Sale
		found bool
	)

	r.conn.Read(func(tables *memory.Tables) {
		for _, s := range tables.Sales {
			if s.ID == id {
				sale = s.Clone()
				found = true
				return
			}
		}
	})

	if !found {
		return nil, false
	}
	return &sale, true
}

// ReplaceSales descarta a coleção atual e grava a nova por inteiro
func (r *saleRepository) ReplaceSales(sales []domain.Sale, updatedAt time.Time) {
	stored := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		stored[i] = sale.Clone()
	}

	_ = r.conn.RunInTransaction(func(tables *memory.Tables) error {
		tables.Sales = stored
		tables.SalesUpdatedAt = updatedAt
		return nil
	})
}

func (r *saleRepository) LastUpdate() time.Time {
	var updatedAt time.Time
	r.conn.Read(func(tables *memory.Tables) {
		updatedAt = tables.SalesUpdatedAt
	})
	return updatedAt
}
