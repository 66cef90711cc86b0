package handler

import (
	"net/http"

	"github.com/victin77/dashboard-love/internal/usecases/ranking"
)

// GetConsultantRanking retorna o ranking dos consultores ativos por comissão
func GetConsultantRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetRankingResponse())
	}
}
