package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/ledger"
)

const LedgerRecomputeJob = "ledger_recompute"

// LedgerRecomputeService refaz o ledger de todas as contas desde a data inicial.
// O ajuste de limites tem agenda própria (LimitAdjustService).
type LedgerRecomputeService struct {
	scheduler *gocron.Scheduler
	config    JobConfig
	ledger    ledger.LedgerService
	metrics   *metrics.Metrics
	status    jobStatus
	baseCtx   context.Context
}

func NewLedgerRecomputeService(
	ledgerService ledger.LedgerService,
	appConfig *config.Config,
	m *metrics.Metrics,
) *LedgerRecomputeService {
	jobConfig := JobConfig{
		CronSchedule: appConfig.LedgerRecompute.CronSchedule,
		SyncEnabled:  appConfig.LedgerRecompute.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       jobConfig.CronSchedule,
		"sync_enabled":        jobConfig.SyncEnabled,
		"max_concurrent_jobs": appConfig.Ledger.MaxConcurrentJobs,
	}).Info("Configuração do recálculo do ledger carregada")

	return &LedgerRecomputeService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    jobConfig,
		ledger:    ledgerService,
		metrics:   m,
		baseCtx:   context.Background(),
	}
}

func (s *LedgerRecomputeService) Name() string {
	return LedgerRecomputeJob
}

func (s *LedgerRecomputeService) Start(ctx context.Context) error {
	s.baseCtx = ctx
	return startCron(ctx, s.scheduler, LedgerRecomputeJob, s.config, func() {
		s.recompute(ctx)
	})
}

func (s *LedgerRecomputeService) recompute(ctx context.Context) {
	startTime := time.Now()
	s.status.started(startTime)

	logrus.Info("Iniciando recálculo do ledger")

	recomputeResult, err := s.ledger.RecomputeAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro no recálculo do ledger")
	}

	s.metrics.ObserveJob(LedgerRecomputeJob, startTime, err)
	s.status.completed(time.Now(), err)

	fields := logrus.Fields{"duration": time.Since(startTime).String()}
	if recomputeResult != nil {
		fields["refreshed"] = recomputeResult.Refreshed
		fields["refresh_failed"] = recomputeResult.Failed
		fields["days_written"] = recomputeResult.DaysWritten
	}
	logrus.WithFields(fields).Info("Recálculo do ledger concluído")
}

func (s *LedgerRecomputeService) TriggerManualSync() bool {
	logrus.Info("Iniciando recálculo manual do ledger")
	go s.recompute(s.baseCtx)
	return true
}

func (s *LedgerRecomputeService) GetStatus() map[string]any {
	return s.status.fill(map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
	})
}
