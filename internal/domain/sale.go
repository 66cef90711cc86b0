package domain

type Product string

const (
	ProductRealEstate Product = "Imóvel"
	ProductAuto       Product = "Auto"
	ProductMoto       Product = "Moto"
	ProductAgro       Product = "Agro"
	ProductServices   Product = "Serviços"
)

// Products é o conjunto fechado de categorias de produto, na ordem exibida no frontend
var Products = []Product{ProductRealEstate, ProductAuto, ProductMoto, ProductAgro, ProductServices}

func (p Product) Valid() bool {
	for _, product := range Products {
		if p == product {
			return true
		}
	}
	return false
}

type Sale struct {
	ID                string        `json:"id"`
	ConsultantID      string        `json:"consultantId"`
	ConsultantName    string        `json:"consultantName"`
	ClientName        string        `json:"clientName"`
	Product           Product       `json:"product"`
	SaleDate          Date          `json:"saleDate"`
	BaseValue         float64       `json:"baseValue"`
	CommissionPercent float64       `json:"commissionPercent"`
	TotalCommission   float64       `json:"totalCommission"`
	Quotas            int           `json:"quotas"`
	UnitValue         float64       `json:"unitValue"`
	CreditGenerated   float64       `json:"creditGenerated"`
	HasInsurance      bool          `json:"hasInsurance"`
	Installments      []Installment `json:"installments"`
}

// CreditRate é a fração do valor base convertida em crédito
const CreditRate = 0.8

// CommissionFor calcula a comissão total de um valor base
func CommissionFor(baseValue, commissionPercent float64) float64 {
	return baseValue * commissionPercent / 100
}

// SaleParams são os dados sorteados de uma venda; os valores derivados saem de NewSale
type SaleParams struct {
	ID                string
	Consultant        Consultant
	ClientName        string
	Product           Product
	SaleDate          Date
	BaseValue         float64
	CommissionPercent float64
	Quotas            int
	HasInsurance      bool
}

// NewSale monta a venda calculando comissão, valor unitário e crédito. Parcelas ficam por conta do chamador.
func NewSale(params SaleParams) Sale {
	sale := Sale{
		ID:                params.ID,
		ConsultantID:      params.Consultant.ID,
		ConsultantName:    params.Consultant.Name,
		ClientName:        params.ClientName,
		Product:           params.Product,
		SaleDate:          params.SaleDate,
		BaseValue:         params.BaseValue,
		CommissionPercent: params.CommissionPercent,
		TotalCommission:   CommissionFor(params.BaseValue, params.CommissionPercent),
		Quotas:            params.Quotas,
		CreditGenerated:   params.BaseValue * CreditRate,
		HasInsurance:      params.HasInsurance,
	}
	if params.Quotas > 0 {
		sale.UnitValue = params.BaseValue / float64(params.Quotas)
	}
	return sale
}

// Clone devolve uma cópia que não compartilha as parcelas com a original
func (s Sale) Clone() Sale {
	installments := make([]Installment, len(s.Installments))
	for i, installment := range s.Installments {
		if installment.PaidDate != nil {
			paidDate := *installment.PaidDate
			installment.PaidDate = &paidDate
		}
		installments[i] = installment
	}
	s.Installments = installments
	return s
}

// SalesFilter são os filtros da listagem de vendas
type SalesFilter struct {
	// ScopeConsultantID restringe a listagem a um consultor (sessões de consultor)
	ScopeConsultantID string
	Search            string
	Product           string
	ConsultantID      string
}

// SaleExportRow é a linha do CSV de exportação
type SaleExportRow struct {
	ID                string  `csv:"id"`
	SaleDate          Date    `csv:"data_venda"`
	ConsultantName    string  `csv:"consultor"`
	ClientName        string  `csv:"cliente"`
	Product           Product `csv:"produto"`
	BaseValue         float64 `csv:"valor_base"`
	CommissionPercent float64 `csv:"percentual_comissao"`
	TotalCommission   float64 `csv:"comissao_total"`
	Quotas            int     `csv:"cotas"`
	UnitValue         float64 `csv:"valor_unitario"`
	CreditGenerated   float64 `csv:"credito_gerado"`
	HasInsurance      bool    `csv:"seguro"`
	PaidInstallments  int     `csv:"parcelas_pagas"`
	Pending           int     `csv:"parcelas_pendentes"`
	Overdue           int     `csv:"parcelas_atrasadas"`
}
