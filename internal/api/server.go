package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/api/handler"
	"github.com/victin77/dashboard-love/internal/api/handler/router"
	"github.com/victin77/dashboard-love/internal/config"
	"github.com/victin77/dashboard-love/internal/scheduler"
	"github.com/victin77/dashboard-love/internal/usecases/authenticating"
	"github.com/victin77/dashboard-love/internal/usecases/consultant"
	"github.com/victin77/dashboard-love/internal/usecases/insighting"
	"github.com/victin77/dashboard-love/internal/usecases/ranking"
	"github.com/victin77/dashboard-love/internal/usecases/selling"
	"github.com/victin77/dashboard-love/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator       authenticating.Authenticator
	Registry            consultant.Registry
	Insighter           insighting.Insighter
	Ranking             ranking.RankingService
	Sales               selling.SalesService
	SalesRefreshService *scheduler.SalesRefreshService
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta rotas e middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		SalesRefreshService: services.SalesRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(time.Now)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, services.Registry)...),
		router.WithRoutes(handler.Dashboard(services.Insighter)...),
		router.WithRoutes(handler.ConsultantRanking(services.Ranking)...),
		router.WithRoutes(handler.Sales(services.Sales)...),
		router.WithRoutes(handler.Consultants(services.Registry)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(handler.SPAHandler(cfg.Server.StaticDir)),
		router.WithMethodNotAllowed(handler.MethodNotAllowedHandler()),
	)

	for _, route := range rt.Routes() {
		logrus.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("Rota registrada")
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
