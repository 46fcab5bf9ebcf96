// Package ledger mantém o histórico diário de gasto de cada conta.
package ledger

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/limits"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/paginating"
	"golang.org/x/sync/errgroup"
)

const insightsResource = "account_insights"

type LedgerService interface {
	Refresh(ctx context.Context, account *domain.AdAccount, token string, since *time.Time) (*domain.LedgerRefreshResult, error)
	RecomputeAll(ctx context.Context) (*RecomputeResult, error)
	TodaySpend(ctx context.Context, account *domain.AdAccount) (decimal.Decimal, error)
	StartDate(account *domain.AdAccount) time.Time
}

// RecomputeResult resume o recálculo completo do ledger
type RecomputeResult struct {
	Refreshed   int `json:"refreshed"`
	Failed      int `json:"failed"`
	DaysWritten int `json:"days_written"`
}

type Service struct {
	fetcher     *paginating.Fetcher
	client      metaclient.Client
	accountRepo repository.AccountRepository
	dailyRepo   repository.DailySpendRepository
	profileRepo repository.CredentialProfileRepository
	ledgerCfg   config.Ledger
	location    *time.Location
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	fetcher *paginating.Fetcher,
	client metaclient.Client,
	accountRepo repository.AccountRepository,
	dailyRepo repository.DailySpendRepository,
	profileRepo repository.CredentialProfileRepository,
	m *metrics.Metrics,
) *Service {
	return &Service{
		fetcher:     fetcher,
		client:      client,
		accountRepo: accountRepo,
		dailyRepo:   dailyRepo,
		profileRepo: profileRepo,
		ledgerCfg:   cfg.Ledger,
		location:    cfg.Location(),
		metrics:     m,
		now:         time.Now,
	}
}

// StartDate é a data inicial do histórico da conta: override do perfil ou data padrão
func (s *Service) StartDate(account *domain.AdAccount) time.Time {
	return s.ledgerCfg.StartDateFor(account.CredentialProfileID, account.Location(s.location))
}

// Refresh busca o gasto diário de since até hoje e grava cada dia por (conta, data),
// sobrescrevendo valores anteriores. Depois recalcula o gasto acumulado somando todos
// os dias armazenados da conta. Uma falha de página interrompe só esta conta; os dias
// já gravados permanecem.
func (s *Service) Refresh(ctx context.Context, account *domain.AdAccount, token string, since *time.Time) (*domain.LedgerRefreshResult, error) {
	loc := account.Location(s.location)
	until := limits.Today(s.now(), loc)

	start := s.StartDate(account)
	if since != nil {
		start = *since
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	if start.After(until) {
		start = until
	}

	log := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"profile_id": account.CredentialProfileID,
		"since":      start.Format(time.DateOnly),
		"until":      until.Format(time.DateOnly),
	})

	result := &domain.LedgerRefreshResult{AccountID: account.ID}

	fetch := func(ctx context.Context, after string, limit int) ([]metadomain.DailySpendInsight, string, error) {
		page, err := s.client.ListAccountInsights(ctx, account.ID, token, start, until, after, limit)
		if err != nil {
			return nil, "", err
		}
		return page.Data, page.Paging.NextCursor(), nil
	}

	pages, _, err := paginating.Walk(ctx, s.fetcher, insightsResource, fetch, func(rows []metadomain.DailySpendInsight) error {
		entries := s.toEntries(account.ID, rows, loc)
		if err := s.dailyRepo.Upsert(ctx, entries); err != nil {
			return err
		}
		result.DaysWritten += len(entries)
		return nil
	})
	result.Pages = pages
	s.metrics.LedgerDaysWritten(result.DaysWritten)

	if err != nil {
		log.WithFields(logrus.Fields{
			"days_written": result.DaysWritten,
			"error":        err.Error(),
		}).Warn("ledger: atualização interrompida")
		return result, domain.NewSyncError(err, "ledger refresh", account.CredentialProfileID, account.ID)
	}

	lifetime, err := s.recomputeLifetime(ctx, account.ID)
	if err != nil {
		return result, domain.NewSyncError(err, "ledger lifetime", account.CredentialProfileID, account.ID)
	}
	result.LifetimeSpend = lifetime

	log.WithFields(logrus.Fields{
		"days_written":   result.DaysWritten,
		"pages":          result.Pages,
		"lifetime_spend": lifetime.String(),
	}).Debug("ledger: conta atualizada")

	return result, nil
}

// recomputeLifetime soma todos os dias da conta e grava o total truncado para inteiro
func (s *Service) recomputeLifetime(ctx context.Context, accountID string) (decimal.Decimal, error) {
	total, err := s.dailyRepo.SumByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	lifetime := domain.TruncateMinor(total)
	if err := s.accountRepo.UpdateLifetimeSpend(ctx, accountID, lifetime); err != nil {
		return decimal.Zero, err
	}

	return lifetime, nil
}

// toEntries converte as linhas da plataforma (unidade principal) em dias do ledger (centavos)
func (s *Service) toEntries(accountID string, rows []metadomain.DailySpendInsight, loc *time.Location) []*domain.DailySpendEntry {
	entries := make([]*domain.DailySpendEntry, 0, len(rows))

	for _, row := range rows {
		date, err := time.ParseInLocation(time.DateOnly, row.DateStart, loc)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"date_start": row.DateStart,
			}).Warn("ledger: linha de insight sem data válida ignorada")
			continue
		}

		spend, err := domain.ParseAmount(row.Spend)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"date":       row.DateStart,
				"error":      err.Error(),
			}).Warn("ledger: gasto ilegível, considerando zero")
		}

		entries = append(entries, &domain.DailySpendEntry{
			AccountID: accountID,
			Date:      date,
			Amount:    domain.MajorToMinor(spend),
		})
	}

	return entries
}

// TodaySpend devolve o gasto de hoje conhecido pelo ledger, em centavos
func (s *Service) TodaySpend(ctx context.Context, account *domain.AdAccount) (decimal.Decimal, error) {
	today := limits.Today(s.now(), account.Location(s.location))
	return s.dailyRepo.GetAmount(ctx, account.ID, today)
}

// RecomputeAll reprocessa o histórico completo de todas as contas com concorrência limitada.
// Cada conta é isolada: uma falha é registrada e as demais seguem.
func (s *Service) RecomputeAll(ctx context.Context) (*RecomputeResult, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger: erro ao listar contas: %w", err)
	}

	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger: erro ao listar perfis: %w", err)
	}

	profileByID := make(map[string]*domain.CredentialProfile, len(profiles))
	for _, profile := range profiles {
		profileByID[profile.ID] = profile
	}

	results := make([]*domain.LedgerRefreshResult, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.ledgerCfg.MaxConcurrentJobs, 1))

	for i, account := range accounts {
		g.Go(func() error {
			log := logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"profile_id": account.CredentialProfileID,
			})

			token, err := profileByID[account.CredentialProfileID].ActiveToken()
			if err != nil {
				log.WithError(err).Warn("ledger: conta sem credencial, ignorada")
				return nil
			}

			start := s.StartDate(account)
			result, err := s.Refresh(gctx, account, token, &start)
			if err != nil {
				log.WithError(err).Error("ledger: falha ao recalcular conta")
				return nil
			}

			results[i] = result
			return nil
		})
	}

	_ = g.Wait()

	summary := &RecomputeResult{}
	for _, result := range results {
		if result == nil {
			summary.Failed++
			continue
		}
		summary.Refreshed++
		summary.DaysWritten += result.DaysWritten
	}

	logrus.WithFields(logrus.Fields{
		"refreshed":    summary.Refreshed,
		"failed":       summary.Failed,
		"days_written": summary.DaysWritten,
	}).Info("ledger: recálculo completo concluído")

	if summary.Refreshed == 0 && summary.Failed > 0 {
		return summary, errors.New("ledger: nenhuma conta recalculada")
	}

	return summary, nil
}
