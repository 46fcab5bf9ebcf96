// Package account reconcilia as contas da plataforma com o cadastro local.
package account

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"encoding/json"
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
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/ledger"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/limits"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/paginating"
	"github.com/vfg2006/ad-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/ad-balance-monitor/pkg/utils"
)

const accountsResource = "ad_accounts"

type AccountService interface {
	SyncProfile(ctx context.Context, profile *domain.CredentialProfile) (*SyncResult, error)
	Reconcile(ctx context.Context, raw metadomain.AdAccount, profileID, token string) (*domain.AdAccount, error)
}

// SyncResult resume a sincronização de um perfil de credencial
type SyncResult struct {
	ProfileID     string                `json:"profile_id"`
	Fetched       int                   `json:"fetched"`
	Pages         int                   `json:"pages"`
	StopReason    paginating.StopReason `json:"stop_reason"`
	Created       int                   `json:"created"`
	Updated       int                   `json:"updated"`
	StatusChanges int                   `json:"status_changes"`
	Failed        int                   `json:"failed"`
	Alerts        int                   `json:"alerts"`
}

type Service struct {
	fetcher     *paginating.Fetcher
	client      metaclient.Client
	accountRepo repository.AccountRepository
	ledger      ledger.LedgerService
	alerts      alerting.AlertService
	calculator  *limits.Calculator
	location    *time.Location
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	fetcher *paginating.Fetcher,
	client metaclient.Client,
	accountRepo repository.AccountRepository,
	ledgerService ledger.LedgerService,
	alertService alerting.AlertService,
	calculator *limits.Calculator,
	m *metrics.Metrics,
) *Service {
	return &Service{
		fetcher:     fetcher,
		client:      client,
		accountRepo: accountRepo,
		ledger:      ledgerService,
		alerts:      alertService,
		calculator:  calculator,
		location:    cfg.Location(),
		metrics:     m,
		now:         time.Now,
	}
}

type reconcileOutcome struct {
	account       *domain.AdAccount
	created       bool
	statusChanged bool
}

// SyncProfile lista as contas do perfil e reconcilia cada uma. Só a falha em obter a lista
// aborta o perfil; uma conta com erro é registrada e as demais seguem.
func (s *Service) SyncProfile(ctx context.Context, profile *domain.CredentialProfile) (*SyncResult, error) {
	result := &SyncResult{ProfileID: profile.ID}
	log := logrus.WithField("profile_id", profile.ID)

	token, err := profile.ActiveToken()
	if err != nil {
		log.WithError(err).Warn("account: perfil sem token utilizável, ignorado")
		return result, err
	}

	fetch := func(ctx context.Context, after string, limit int) ([]metadomain.AdAccount, string, error) {
		page, err := s.client.ListAdAccounts(ctx, token, after, limit)
		if err != nil {
			return nil, "", err
		}
		return page.Data, page.Paging.NextCursor(), nil
	}

	listing, err := paginating.Collect(ctx, s.fetcher, accountsResource, fetch)
	result.Fetched = listing.Count
	result.Pages = listing.Pages
	result.StopReason = listing.StopReason

	if err != nil {
		if listing.Count == 0 {
			return result, NewAccountError(fmt.Errorf("%w: %w", ErrFetchAccounts, err), apiErrors.ErrExternalService, profile.ID)
		}
		log.WithFields(logrus.Fields{
			"fetched": listing.Count,
			"error":   err.Error(),
		}).Warn("account: listagem interrompida, seguindo com as contas já obtidas")
	}

	for _, raw := range listing.Items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome, err := s.reconcile(ctx, raw, profile.ID, token)
		s.metrics.AccountReconciled(err)
		if err != nil {
			result.Failed++
			log.WithFields(logrus.Fields{
				"account_id": raw.NormalizedID(),
				"error":      err.Error(),
			}).Error("account: falha ao reconciliar conta")
			continue
		}

		if outcome.created {
			result.Created++
		} else {
			result.Updated++
		}
		if outcome.statusChanged {
			result.StatusChanges++
		}

		alert, err := s.alerts.EvaluateAccount(ctx, outcome.account)
		if err != nil {
			log.WithFields(logrus.Fields{
				"account_id": outcome.account.ID,
				"error":      err.Error(),
			}).Warn("account: falha ao avaliar alerta")
			continue
		}
		if alert != nil {
			result.Alerts++
		}
	}

	log.WithFields(logrus.Fields{
		"fetched":        result.Fetched,
		"pages":          result.Pages,
		"created":        result.Created,
		"updated":        result.Updated,
		"status_changes": result.StatusChanges,
		"failed":         result.Failed,
		"alerts":         result.Alerts,
	}).Info("account: perfil sincronizado")

	return result, nil
}

// Reconcile grava uma conta da plataforma e atualiza o seu ledger
func (s *Service) Reconcile(ctx context.Context, raw metadomain.AdAccount, profileID, token string) (*domain.AdAccount, error) {
	outcome, err := s.reconcile(ctx, raw, profileID, token)
	if err != nil {
		return nil, err
	}
	return outcome.account, nil
}

func (s *Service) reconcile(ctx context.Context, raw metadomain.AdAccount, profileID, token string) (*reconcileOutcome, error) {
	accountID := raw.NormalizedID()
	if accountID == "" {
		return nil, NewAccountError(fmt.Errorf("%w: %w", ErrMissingAccountID, domain.ErrInvariantViolation), apiErrors.ErrInvalidFormat, raw.Name)
	}

	status, err := parseStatus(raw.AccountStatus)
	if err != nil {
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrInvalidStatus, domain.ErrInvariantViolation), apiErrors.ErrInvalidFormat, accountID, err.Error())
	}

	amountSpent := s.parseAmount(accountID, "amount_spent", raw.AmountSpent)
	spendCap := s.parseAmount(accountID, "spend_cap", raw.SpendCap)
	balance := s.parseAmount(accountID, "balance", raw.Balance)
	availableFunds := domain.AvailableFunds(spendCap, amountSpent, balance)

	stored, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrFindAccount, err), apiErrors.ErrDatabaseOperation, accountID, "")
	}

	now := s.now()
	outcome := &reconcileOutcome{}

	var since *time.Time
	var change *domain.AccountStatusChange
	account := stored

	if stored != nil {
		// a auditoria captura o status anterior antes de sobrescrevê-lo
		if stored.Status != status {
			change, err = newStatusChange(stored, status, availableFunds, now)
			if err != nil {
				return nil, err
			}
		}

		if stored.LastSyncAt != nil {
			lastSync := *stored.LastSyncAt
			since = &lastSync
		}
	} else {
		account = &domain.AdAccount{ID: accountID, CreatedAt: now}
		outcome.created = true
	}

	account.Name = raw.Name
	account.Status = status
	account.Currency = raw.Currency
	account.Timezone = raw.TimezoneName
	account.AmountSpent = amountSpent
	account.SpendCap = spendCap
	account.Balance = balance
	account.AvailableFunds = availableFunds
	account.AlertEnabled = true
	account.LastSyncAt = &now
	account.CredentialProfileID = profileID

	if outcome.created {
		account.Limits = s.initialLimits(ctx, account, now)
	}

	if change != nil {
		// auditoria e conta na mesma transação: uma falha não deixa registro duplicado na próxima sincronização
		if err := s.accountRepo.UpsertWithStatusChange(ctx, account, change); err != nil {
			return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrRecordStatusChange, err), apiErrors.ErrDatabaseOperation, accountID, "")
		}
		outcome.statusChanged = true

		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"from_status": change.FromStatus.String(),
			"to_status":   change.ToStatus.String(),
		}).Info("account: mudança de status registrada")
	} else if err := s.accountRepo.Upsert(ctx, account); err != nil {
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrUpdateAccount, err), apiErrors.ErrDatabaseOperation, accountID, "")
	}

	// falha no ledger afeta só o histórico desta conta
	if _, err := s.ledger.Refresh(ctx, account, token, since); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"profile_id": profileID,
			"error":      err.Error(),
		}).Warn("account: falha ao atualizar ledger da conta")
	}

	outcome.account = account
	return outcome, nil
}

func newStatusChange(stored *domain.AdAccount, to domain.AdAccountStatus, funds decimal.Decimal, now time.Time) (*domain.AccountStatusChange, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrGenerateID, err), apiErrors.ErrInternalServer, stored.ID, "")
	}

	return &domain.AccountStatusChange{
		ID:              id,
		AccountID:       stored.ID,
		FromStatus:      stored.Status,
		ToStatus:        to,
		BalanceAtChange: funds,
		ChangedAt:       now,
	}, nil
}

// initialLimits usa o gasto de hoje conhecido pelo ledger (centavos) convertido para a unidade principal
func (s *Service) initialLimits(ctx context.Context, account *domain.AdAccount, now time.Time) domain.SpendLimits {
	todaySpend, err := s.ledger.TodaySpend(ctx, account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("account: gasto de hoje indisponível, usando limites padrão")
		todaySpend = decimal.Zero
	}

	return s.calculator.Calculate(domain.MinorToMajor(todaySpend), now, account.Location(s.location))
}

func (s *Service) parseAmount(accountID, field, raw string) decimal.Decimal {
	value, err := domain.ParseAmount(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"field":      field,
			"error":      err.Error(),
		}).Warn("account: valor ilegível, considerando zero")
	}
	return value
}

func parseStatus(raw json.Number) (domain.AdAccountStatus, error) {
	if raw == "" {
		return 0, errors.New("account_status ausente")
	}

	value, err := raw.Int64()
	if err != nil {
		return 0, fmt.Errorf("account_status não inteiro %q", raw.String())
	}

	return domain.AdAccountStatus(value), nil
}
