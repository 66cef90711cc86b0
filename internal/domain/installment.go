package domain

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// InstallmentsPerSale é a quantidade fixa de parcelas de comissão de cada venda
const InstallmentsPerSale = 6

// Installment é uma parcela da comissão de uma venda.
// PaidDate só existe quando Status == InstallmentPaid.
type Installment struct {
	ID       string            `json:"id"`
	SaleID   string            `json:"saleId"`
	Number   int               `json:"number"`
	Value    float64           `json:"value"`
	DueDate  Date              `json:"dueDate"`
	Status   InstallmentStatus `json:"status"`
	PaidDate *Date             `json:"paidDate,omitempty"`
}

// InstallmentStats conta parcelas por status
type InstallmentStats struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
	Overdue int `json:"overdue"`
}

func (s *InstallmentStats) Add(status InstallmentStatus) {
	switch status {
	case InstallmentPaid:
		s.Paid++
	case InstallmentPending:
		s.Pending++
	case InstallmentOverdue:
		s.Overdue++
	}
}
