package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/business"
)

const BusinessAssociationJob = "business_association"

// BusinessAssociationService associa periodicamente as contas aos seus business
type BusinessAssociationService struct {
	scheduler   *gocron.Scheduler
	config      JobConfig
	association business.AssociationService
	metrics     *metrics.Metrics
	status      jobStatus
	baseCtx     context.Context
}

func NewBusinessAssociationService(
	association business.AssociationService,
	appConfig *config.Config,
	m *metrics.Metrics,
) *BusinessAssociationService {
	jobConfig := JobConfig{
		CronSchedule: appConfig.BusinessAssociation.CronSchedule,
		SyncEnabled:  appConfig.BusinessAssociation.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
	}).Info("Configuração da associação de business carregada")

	return &BusinessAssociationService{
		scheduler:   gocron.NewScheduler(appConfig.Location()),
		config:      jobConfig,
		association: association,
		metrics:     m,
		baseCtx:     context.Background(),
	}
}

func (s *BusinessAssociationService) Name() string {
	return BusinessAssociationJob
}

func (s *BusinessAssociationService) Start(ctx context.Context) error {
	s.baseCtx = ctx
	return startCron(ctx, s.scheduler, BusinessAssociationJob, s.config, func() {
		s.associateAll(ctx)
	})
}

func (s *BusinessAssociationService) associateAll(ctx context.Context) {
	startTime := time.Now()
	s.status.started(startTime)

	logrus.Info("Iniciando associação de contas aos business")

	reports, err := s.association.AssociateAll(ctx)
	s.metrics.ObserveJob(BusinessAssociationJob, startTime, err)
	s.status.completed(time.Now(), err)
	if err != nil {
		logrus.WithError(err).Error("Erro na associação de contas aos business")
		return
	}

	var associated, unassociated int
	for _, report := range reports {
		associated += report.Associated
		unassociated += len(report.Unassociated)
	}

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"businesses":   len(reports),
		"associated":   associated,
		"unassociated": unassociated,
	}).Info("Associação de contas concluída")
}

func (s *BusinessAssociationService) TriggerManualSync() bool {
	logrus.Info("Iniciando associação manual de contas")
	go s.associateAll(s.baseCtx)
	return true
}

func (s *BusinessAssociationService) GetStatus() map[string]any {
	return s.status.fill(map[string]any{
		"sync_enabled": s.config.SyncEnabled,
		"sync_cron":    s.config.CronSchedule,
	})
}
