package domain

// DashboardStats é o resultado da agregação das vendas exibida no dashboard
type DashboardStats struct {
	SalesToday       int              `json:"salesToday"`
	CommissionToday  float64          `json:"commissionToday"`
	SalesWeek        int              `json:"salesWeek"`
	CommissionMonth  float64          `json:"commissionMonth"`
	PendingCount     int              `json:"pendingCount"`
	OverdueCount     int              `json:"overdueCount"`
	TotalCommission  float64          `json:"totalCommission"`
	TotalPaid        float64          `json:"totalPaid"`
	TotalPending     float64          `json:"totalPending"`
	TotalOverdue     float64          `json:"totalOverdue"`
	TotalCredit      float64          `json:"totalCredit"`
	InstallmentStats InstallmentStats `json:"installmentStats"`
}

// CommissionSummary descreve a distribuição das comissões por venda
type CommissionSummary struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}
