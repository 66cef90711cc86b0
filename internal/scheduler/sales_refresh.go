// Package scheduler contém os serviços de agendamento do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/victin77/dashboard-love/internal/config"
)

// SalesRefresher regenera a coleção de vendas
type SalesRefresher interface {
	RefreshSales(ctx context.Context) (int, error)
}

type SalesRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

type SalesRefreshService struct {
	scheduler *gocron.Scheduler
	refresher SalesRefresher
	config    SalesRefreshConfig
	ctx       context.Context
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSales       int
	lastSyncError       string
}

func NewSalesRefreshService(refresher SalesRefresher, cfg *config.Config) *SalesRefreshService {
	refreshConfig := SalesRefreshConfig{
		CronSchedule: cfg.SalesRefresh.CronSchedule,
		Enabled:      cfg.SalesRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização de vendas carregada")

	return &SalesRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
		ctx:       context.Background(),
		now:       time.Now,
	}
}

func (s *SalesRefreshService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Cron de atualização de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSales(); err != nil {
			logrus.WithError(err).Error("Erro na atualização agendada de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSales executa uma atualização; se outra estiver em andamento, retorna sem fazer nada
func (s *SalesRefreshService) RefreshSales() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de vendas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	ctx := s.ctx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização de vendas")

	count, err := s.refresher.RefreshSales(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()

	if err != nil {
		s.lastSyncError = err.Error()
		return err
	}

	s.lastSyncSales = count
	s.lastSyncError = ""

	logrus.WithField("sales", count).Info("Atualização de vendas concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma atualização em background
func (s *SalesRefreshService) TriggerManualSync() {
	if s.IsRunning() {
		logrus.Info("Atualização de vendas já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando atualização manual de vendas")
	go func() {
		if err := s.RefreshSales(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual de vendas")
		}
	}()
}

func (s *SalesRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SalesRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"syncEnabled":         s.config.Enabled,
		"syncCron":            s.config.CronSchedule,
		"syncRunning":         s.syncRunning,
		"lastSyncStartedAt":   s.lastSyncStartedAt,
		"lastSyncCompletedAt": s.lastSyncCompletedAt,
		"lastSyncSales":       s.lastSyncSales,
		"lastSyncError":       s.lastSyncError,
	}
}
