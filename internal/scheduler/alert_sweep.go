package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/alerting"
)

const AlertSweepJob = "alert_sweep"

// AlertSweepService reavalia os alertas de todas as contas com alerta habilitado
type AlertSweepService struct {
	scheduler *gocron.Scheduler
	config    JobConfig
	alerts    alerting.AlertService
	metrics   *metrics.Metrics
	status    jobStatus
	baseCtx   context.Context
}

func NewAlertSweepService(alerts alerting.AlertService, appConfig *config.Config, m *metrics.Metrics) *AlertSweepService {
	jobConfig := JobConfig{
		CronSchedule: appConfig.AlertSweep.CronSchedule,
		SyncEnabled:  appConfig.AlertSweep.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    jobConfig.CronSchedule,
		"sync_enabled":     jobConfig.SyncEnabled,
		"cooldown_minutes": appConfig.Alerts.CooldownMinutes,
	}).Info("Configuração da varredura de alertas carregada")

	return &AlertSweepService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    jobConfig,
		alerts:    alerts,
		metrics:   m,
		baseCtx:   context.Background(),
	}
}

func (s *AlertSweepService) Name() string {
	return AlertSweepJob
}

func (s *AlertSweepService) Start(ctx context.Context) error {
	s.baseCtx = ctx
	return startCron(ctx, s.scheduler, AlertSweepJob, s.config, func() {
		s.sweep(ctx)
	})
}

func (s *AlertSweepService) sweep(ctx context.Context) {
	startTime := time.Now()
	s.status.started(startTime)

	result, err := s.alerts.Sweep(ctx)
	s.metrics.ObserveJob(AlertSweepJob, startTime, err)
	s.status.completed(time.Now(), err)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de alertas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"evaluated": result.Evaluated,
		"sent":      result.Sent,
		"throttled": result.Throttled,
		"failed":    result.Failed,
	}).Info("Varredura de alertas concluída")
}

func (s *AlertSweepService) TriggerManualSync() bool {
	logrus.Info("Iniciando varredura manual de alertas")
	go s.sweep(s.baseCtx)
	return true
}

func (s *AlertSweepService) GetStatus() map[string]any {
	return s.status.fill(map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
	})
}
