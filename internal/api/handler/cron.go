package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/scheduler"
	"github.com/victin77/dashboard-love/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSalesRefresh = "sales-refresh"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	SalesRefreshService *scheduler.SalesRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeSalesRefresh, CronJobTypeAll:
			if services.SalesRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de atualização de vendas não disponível", nil)
				return
			}
			services.SalesRefreshService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sales-refresh, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SalesRefreshService != nil {
			status[CronJobTypeSalesRefresh] = services.SalesRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
