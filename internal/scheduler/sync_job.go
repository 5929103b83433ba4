package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/internal/config"
	"github.com/borncamp/marketing-dashboard-sync/internal/domain"
	"github.com/borncamp/marketing-dashboard-sync/internal/usecases/syncing"
)

// SyncJobConfig representa a configuração do agendador de sincronização
type SyncJobConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SyncJobService gerencia o agendamento e execução dos ciclos de
// sincronização com o Google Ads. Ciclos nunca rodam em paralelo: um ciclo
// disparado enquanto outro está em andamento é ignorado.
type SyncJobService struct {
	scheduler           *gocron.Scheduler
	config              SyncJobConfig
	syncService         syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.SyncSummary
}

// NewSyncJobService cria uma nova instância do serviço de sincronização
func NewSyncJobService(syncService syncing.Syncer, appConfig *config.Config) *SyncJobService {
	jobConfig := SyncJobConfig{
		CronSchedule: appConfig.SyncJob.CronSchedule,
		SyncEnabled:  appConfig.SyncJob.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &SyncJobService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      jobConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SyncJobService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização com o Google Ads desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização com o Google Ads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização com o Google Ads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização com o Google Ads")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa um ciclo de sincronização com guarda contra sobreposição
func (s *SyncJobService) runSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary, err := s.syncService.Run()
	if err != nil {
		logrus.WithError(err).Error("Ciclo de sincronização terminou com falha em pelo menos um ramo")
	}

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um ciclo de sincronização
func (s *SyncJobService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual com o Google Ads")
	go s.runSync()
}

// GetStatus retorna o status atual do agendador e o resumo da última execução
func (s *SyncJobService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	lastSummary := s.lastSummary
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           lastSummary,
	}
}
