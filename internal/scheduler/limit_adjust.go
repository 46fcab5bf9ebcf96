package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/limits"
)

const LimitAdjustJob = "limit_adjust"

// LimitAdjustService recalcula os limites de alerta com o gasto de hoje consultado na plataforma.
// Roda ao longo do dia: contas suspensas por falta de gasto voltam a ter limites quando o gasto retoma.
type LimitAdjustService struct {
	scheduler *gocron.Scheduler
	config    JobConfig
	adjuster  limits.LimitAdjuster
	metrics   *metrics.Metrics
	status    jobStatus
	baseCtx   context.Context
}

func NewLimitAdjustService(adjuster limits.LimitAdjuster, appConfig *config.Config, m *metrics.Metrics) *LimitAdjustService {
	jobConfig := JobConfig{
		CronSchedule: appConfig.LimitAdjust.CronSchedule,
		SyncEnabled:  appConfig.LimitAdjust.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
	}).Info("Configuração do ajuste de limites carregada")

	return &LimitAdjustService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    jobConfig,
		adjuster:  adjuster,
		metrics:   m,
		baseCtx:   context.Background(),
	}
}

func (s *LimitAdjustService) Name() string {
	return LimitAdjustJob
}

func (s *LimitAdjustService) Start(ctx context.Context) error {
	s.baseCtx = ctx
	return startCron(ctx, s.scheduler, LimitAdjustJob, s.config, func() {
		s.adjust(ctx)
	})
}

func (s *LimitAdjustService) adjust(ctx context.Context) {
	startTime := time.Now()
	s.status.started(startTime)

	result, err := s.adjuster.AdjustAll(ctx)
	s.metrics.ObserveJob(LimitAdjustJob, startTime, err)
	s.status.completed(time.Now(), err)
	if err != nil {
		logrus.WithError(err).Error("Erro no ajuste de limites")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"adjusted":  result.Adjusted,
		"suspended": result.Suspended,
		"failed":    result.Failed,
	}).Info("Ajuste de limites concluído")
}

func (s *LimitAdjustService) TriggerManualSync() bool {
	logrus.Info("Iniciando ajuste manual de limites")
	go s.adjust(s.baseCtx)
	return true
}

func (s *LimitAdjustService) GetStatus() map[string]any {
	return s.status.fill(map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
	})
}
