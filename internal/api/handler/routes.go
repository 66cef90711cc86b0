package handler

import (
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/victin77/dashboard-love/internal/api/handler/router"
	"github.com/victin77/dashboard-love/internal/usecases/authenticating"
	"github.com/victin77/dashboard-love/internal/usecases/consultant"
	"github.com/victin77/dashboard-love/internal/usecases/insighting"
	"github.com/victin77/dashboard-love/internal/usecases/ranking"
	"github.com/victin77/dashboard-love/internal/usecases/selling"
	"github.com/victin77/dashboard-love/pkg/middleware"
)

func Healthcheck(now func() time.Time) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(now),
		},
	}
}

func Authentication(service authenticating.Authenticator, registry consultant.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/api/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/v1/login/consultants",
			Method:  http.MethodGet,
			Handler: LoginConsultants(registry),
		},
		{
			Path:        "/api/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/api/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetCommissionSummary(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}

func ConsultantRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/ranking",
			Method:      http.MethodGet,
			Handler:     GetConsultantRanking(service),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
	}
}

func Sales(service selling.SalesService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/api/v1/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/api/v1/sales/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSales(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/api/v1/export/sales.csv",
			Method:      http.MethodGet,
			Handler:     ExportSales(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}

func Consultants(registry consultant.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/consultants",
			Method:      http.MethodGet,
			Handler:     ListConsultants(registry),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/consultants",
			Method:      http.MethodPost,
			Handler:     CreateConsultant(registry),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/consultants/:id",
			Method:      http.MethodGet,
			Handler:     GetConsultant(registry),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/consultants/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteConsultant(registry),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/consultants/:id/password",
			Method:      http.MethodPut,
			Handler:     UpdateConsultantPassword(registry),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/consultants/:id/toggle-status",
			Method:      http.MethodPost,
			Handler:     ToggleConsultantStatus(registry),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
	}
}
