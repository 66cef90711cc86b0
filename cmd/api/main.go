package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/infrastructure/database/memory"
	"github.com/victin77/dashboard-love/infrastructure/migration"
	"github.com/victin77/dashboard-love/infrastructure/repository"
	"github.com/victin77/dashboard-love/internal/api"
	"github.com/victin77/dashboard-love/internal/config"
	"github.com/victin77/dashboard-love/internal/scheduler"
	"github.com/victin77/dashboard-love/internal/usecases/authenticating"
	"github.com/victin77/dashboard-love/internal/usecases/consultant"
	"github.com/victin77/dashboard-love/internal/usecases/generating"
	"github.com/victin77/dashboard-love/internal/usecases/insighting"
	"github.com/victin77/dashboard-love/internal/usecases/ranking"
	"github.com/victin77/dashboard-love/internal/usecases/selling"
	"github.com/victin77/dashboard-love/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logFile := log.Setup(cfg.App.LogLevel, cfg.App.LogFile)
	defer logFile.Close()
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Todo o estado vive em memória e é recriado a cada inicialização
	store := memory.NewStore()
	if err := migration.SeedConsultants(store); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar consultores iniciais")
	}

	consultantRepo := repository.NewConsultantRepository(store)
	saleRepo := repository.NewSaleRepository(store)

	generator := generating.NewSeededService(cfg.Generator.Seed, time.Now)

	registry := consultant.NewService(consultantRepo, time.Now)
	authenticator := authenticating.NewService(consultantRepo, cfg, time.Now)
	insightService := insighting.NewService(saleRepo, time.Now)
	rankingService := ranking.NewConsultantRankingService(consultantRepo, saleRepo)
	salesService := selling.NewService(saleRepo, consultantRepo, generator, cfg.SalesRefresh.Delay, time.Now)

	salesService.GenerateInitialSales()

	salesRefreshService := scheduler.NewSalesRefreshService(salesService, cfg)
	if err := salesRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de vendas")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:       authenticator,
		Registry:            registry,
		Insighter:           insightService,
		Ranking:             rankingService,
		Sales:               salesService,
		SalesRefreshService: salesRefreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
