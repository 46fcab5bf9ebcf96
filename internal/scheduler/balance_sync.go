package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/account"
)

const BalanceSyncJob = "balance_sync"

// BalanceSyncService executa a sincronização de saldo de todos os perfis de credencial.
// Execuções sobrepostas são descartadas.
type BalanceSyncService struct {
	scheduler      *gocron.Scheduler
	config         JobConfig
	profileRepo    repository.CredentialProfileRepository
	accountService account.AccountService
	metrics        *metrics.Metrics
	syncRunning    bool
	syncMutex      sync.Mutex
	status         jobStatus
	baseCtx        context.Context
}

func NewBalanceSyncService(
	profileRepo repository.CredentialProfileRepository,
	accountService account.AccountService,
	appConfig *config.Config,
	m *metrics.Metrics,
) *BalanceSyncService {
	jobConfig := JobConfig{
		CronSchedule: appConfig.BalanceSync.CronSchedule,
		SyncEnabled:  appConfig.BalanceSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
	}).Info("Configuração da sincronização de saldo carregada")

	return &BalanceSyncService{
		scheduler:      gocron.NewScheduler(appConfig.Location()),
		config:         jobConfig,
		profileRepo:    profileRepo,
		accountService: accountService,
		metrics:        m,
		baseCtx:        context.Background(),
	}
}

func (s *BalanceSyncService) Name() string {
	return BalanceSyncJob
}

// Start inicia o agendador
func (s *BalanceSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx
	return startCron(ctx, s.scheduler, BalanceSyncJob, s.config, func() {
		s.syncAllProfiles(ctx)
	})
}

// syncAllProfiles sincroniza as contas de todos os perfis. A flag é marcada antes de qualquer
// chamada à plataforma e liberada em todos os caminhos de saída.
func (s *BalanceSyncService) syncAllProfiles(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		s.metrics.JobSkipped(BalanceSyncJob)
		logrus.Info("Sincronização de saldo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.status.started(startTime)

	var runErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()

		s.metrics.ObserveJob(BalanceSyncJob, startTime, runErr)
		s.status.completed(time.Now(), runErr)
	}()

	logrus.Info("Iniciando sincronização de saldo para todos os perfis")

	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		runErr = err
		logrus.WithError(err).Error("Erro ao buscar perfis de credencial para sincronização de saldo")
		return
	}

	if len(profiles) == 0 {
		logrus.Info("Nenhum perfil de credencial encontrado para sincronização de saldo")
		return
	}

	var synced, failed int
	for _, profile := range profiles {
		if ctx.Err() != nil {
			runErr = ctx.Err()
			break
		}

		result, err := s.accountService.SyncProfile(ctx, profile)
		if err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"profile_id": profile.ID,
				"error":      err.Error(),
			}).Error("Erro ao sincronizar perfil de credencial")
			continue
		}

		synced++
		logrus.WithFields(logrus.Fields{
			"profile_id": profile.ID,
			"fetched":    result.Fetched,
			"failed":     result.Failed,
		}).Debug("Perfil sincronizado")
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"profiles": len(profiles),
		"synced":   synced,
		"failed":   failed,
	}).Info("Sincronização de saldo concluída")
}

// TriggerManualSync inicia manualmente uma sincronização; retorna false quando já há uma em andamento
func (s *BalanceSyncService) TriggerManualSync() bool {
	if s.isRunning() {
		logrus.Info("Sincronização de saldo já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de saldo")
	go s.syncAllProfiles(s.baseCtx)
	return true
}

func (s *BalanceSyncService) isRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *BalanceSyncService) GetStatus() map[string]any {
	return s.status.fill(map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
		"sync_running": s.isRunning(),
	})
}
