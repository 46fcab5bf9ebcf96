package limits

//go:generate mockgen -source=adjuster.go -destination=mocks/adjuster.go -package=mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"golang.org/x/sync/errgroup"
)

type LimitAdjuster interface {
	AdjustAll(ctx context.Context) (*AdjustResult, error)
}

// AdjustResult resume o ajuste diário de limites
type AdjustResult struct {
	Adjusted  int `json:"adjusted"`
	Suspended int `json:"suspended"`
	Failed    int `json:"failed"`
}

// Adjuster recalcula os limites de todas as contas a partir do gasto de hoje consultado na plataforma
type Adjuster struct {
	calculator  *Calculator
	accountRepo repository.AccountRepository
	profileRepo repository.CredentialProfileRepository
	client      metaclient.Client
	location    *time.Location
	concurrency int
	now         func() time.Time
}

func NewAdjuster(
	cfg *config.Config,
	calculator *Calculator,
	accountRepo repository.AccountRepository,
	profileRepo repository.CredentialProfileRepository,
	client metaclient.Client,
) *Adjuster {
	return &Adjuster{
		calculator:  calculator,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		client:      client,
		location:    cfg.Location(),
		concurrency: cfg.Ledger.MaxConcurrentJobs,
		now:         time.Now,
	}
}

// AdjustAll recalcula os limites de cada conta. Quando o gasto de hoje é zero ou não pôde ser
// obtido os limites são zerados, o que suspende os alertas até o gasto voltar.
func (a *Adjuster) AdjustAll(ctx context.Context) (*AdjustResult, error) {
	accounts, err := a.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := a.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		token, err := profile.ActiveToken()
		if err != nil {
			logrus.WithField("profile_id", profile.ID).Warn("limits: perfil sem token, contas terão limites zerados")
			continue
		}
		tokens[profile.ID] = token
	}

	outcomes := make([]string, len(accounts))
	now := a.now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.concurrency, 1))

	for i, account := range accounts {
		g.Go(func() error {
			outcomes[i] = a.adjust(gctx, account, tokens[account.CredentialProfileID], now)
			return nil
		})
	}

	_ = g.Wait()

	result := &AdjustResult{}
	for _, outcome := range outcomes {
		switch outcome {
		case "adjusted":
			result.Adjusted++
		case "suspended":
			result.Suspended++
		default:
			result.Failed++
		}
	}

	logrus.WithFields(logrus.Fields{
		"adjusted":  result.Adjusted,
		"suspended": result.Suspended,
		"failed":    result.Failed,
	}).Info("limits: ajuste diário concluído")

	return result, nil
}

func (a *Adjuster) adjust(ctx context.Context, account *domain.AdAccount, token string, now time.Time) string {
	log := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"profile_id": account.CredentialProfileID,
	})

	todaySpend := decimal.Zero
	if token != "" {
		spend, err := a.client.GetTodaySpend(ctx, account.ID, token)
		if err != nil {
			log.WithError(err).Warn("limits: gasto de hoje indisponível, zerando limites")
		} else {
			todaySpend = spend
		}
	}

	limits := domain.SpendLimits{Critical: decimal.Zero, Medium: decimal.Zero, Initial: decimal.Zero}
	outcome := "suspended"
	if todaySpend.IsPositive() {
		limits = a.calculator.Calculate(todaySpend, now, account.Location(a.location))
		outcome = "adjusted"
	}

	if err := a.accountRepo.UpdateLimits(ctx, account.ID, limits); err != nil {
		log.WithError(err).Error("limits: falha ao gravar limites")
		return "failed"
	}

	log.WithFields(logrus.Fields{
		"today_spend":    todaySpend.String(),
		"critical_limit": limits.Critical.String(),
		"medium_limit":   limits.Medium.String(),
		"initial_limit":  limits.Initial.String(),
	}).Debug("limits: limites ajustados")

	return outcome
}
