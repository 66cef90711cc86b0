package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/usecases/insighting"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
)

// GetDashboardStats retorna os indicadores do dashboard, do consultor logado ou de todos
func GetDashboardStats(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetDashboardStats(scopedConsultantID(r)))
	}
}

func GetCommissionSummary(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetCommissionSummary(scopedConsultantID(r))
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular resumo de comissões")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular resumo de comissões", nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
