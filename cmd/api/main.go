package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/notification"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/ad-balance-monitor/internal/api"
	"github.com/vfg2006/ad-balance-monitor/internal/api/handler"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/scheduler"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/account"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/business"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/ledger"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/limits"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/paginating"
	"github.com/vfg2006/ad-balance-monitor/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Setup(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := postgres.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco de dados")
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	dailySpendRepo := repository.NewDailySpendRepository(pgConn)
	businessRepo := repository.NewBusinessEntityRepository(pgConn)
	profileRepo := repository.NewCredentialProfileRepository(pgConn)

	appMetrics := metrics.New()

	metaClient := metaclient.NewClient(cfg, appMetrics)
	sender := notification.NewSender(cfg)
	fetcher := paginating.NewFetcher(cfg, appMetrics)
	calculator := limits.NewCalculator(cfg.Alerts)

	ledgerService := ledger.NewService(cfg, fetcher, metaClient, accountRepo, dailySpendRepo, profileRepo, appMetrics)
	alertService := alerting.NewService(cfg, accountRepo, sender, appMetrics)
	adjuster := limits.NewAdjuster(cfg, calculator, accountRepo, profileRepo, metaClient)
	accountService := account.NewService(cfg, fetcher, metaClient, accountRepo, ledgerService, alertService, calculator, appMetrics)
	associationService := business.NewService(fetcher, metaClient, accountRepo, businessRepo, profileRepo, appMetrics)

	cronServices := handler.CronJobServices{
		BalanceSync:         scheduler.NewBalanceSyncService(profileRepo, accountService, cfg, appMetrics),
		LedgerRecompute:     scheduler.NewLedgerRecomputeService(ledgerService, cfg, appMetrics),
		LimitAdjust:         scheduler.NewLimitAdjustService(adjuster, cfg, appMetrics),
		BusinessAssociation: scheduler.NewBusinessAssociationService(associationService, cfg, appMetrics),
		AlertSweep:          scheduler.NewAlertSweepService(alertService, cfg, appMetrics),
	}

	for _, job := range []scheduler.Job{
		cronServices.BalanceSync,
		cronServices.LedgerRecompute,
		cronServices.LimitAdjust,
		cronServices.BusinessAssociation,
		cronServices.AlertSweep,
	} {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", job.Name()).Error("Erro ao iniciar o agendador")
			continue
		}
		logrus.WithField("job", job.Name()).Info("Agendador iniciado com sucesso")
	}

	server, err := api.New(cfg, pgConn, appMetrics, associationService, cronServices)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
