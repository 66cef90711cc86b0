package domain

import "time"

type ConsultantRankingResponse struct {
	Ranking    []ConsultantRankingItem `json:"ranking"`
	LastUpdate time.Time               `json:"lastUpdate"`
}

type ConsultantRankingItem struct {
	Position        int     `json:"position"`
	ConsultantID    string  `json:"consultantId"`
	Name            string  `json:"name"`
	TotalSales      int     `json:"totalSales"`
	TotalCommission float64 `json:"totalCommission"`
}
