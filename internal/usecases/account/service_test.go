package account

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	alertmocks "github.com/vfg2006/ad-balance-monitor/internal/usecases/alerting/mocks"
	ledgermocks "github.com/vfg2006/ad-balance-monitor/internal/usecases/ledger/mocks"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/limits"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/paginating"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 4, 0, 0, 0, time.UTC)

type testDeps struct {
	client      *metamocks.MockClient
	accountRepo *mocks.MockAccountRepository
	ledger      *ledgermocks.MockLedgerService
	alerts      *alertmocks.MockAlertService
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	deps := &testDeps{
		client:      metamocks.NewMockClient(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ledger:      ledgermocks.NewMockLedgerService(ctrl),
		alerts:      alertmocks.NewMockAlertService(ctrl),
	}

	service := &Service{
		fetcher:     &paginating.Fetcher{PageSize: 100, MaxPages: 50},
		client:      deps.client,
		accountRepo: deps.accountRepo,
		ledger:      deps.ledger,
		alerts:      deps.alerts,
		calculator: limits.NewCalculator(config.Alerts{
			CriticalMultiplier: 1.5,
			MediumMultiplier:   3,
			InitialMultiplier:  5,
			DefaultCritical:    50,
			DefaultMedium:      100,
			DefaultInitial:     200,
		}),
		location: time.UTC,
		now:      func() time.Time { return fixedNow },
	}

	return service, deps
}

func rawAccount(id, status string) metadomain.AdAccount {
	return metadomain.AdAccount{
		ID:            "act_" + id,
		AccountID:     id,
		Name:          "Conta " + id,
		AccountStatus: json.Number(status),
		Currency:      "BRL",
		TimezoneName:  "America/Sao_Paulo",
		AmountSpent:   "5000",
		SpendCap:      "100000",
		Balance:       "2000",
	}
}

func TestService_Reconcile_NewAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	raw := rawAccount("111", "1")
	raw.TimezoneName = "UTC"

	deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(nil, nil)
	// 2400 na unidade principal (240000 centavos) às 04:00
	deps.ledger.EXPECT().TodaySpend(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(240000), nil)
	deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.AdAccount) error {
			assert.Equal(t, "111", acc.ID)
			assert.Equal(t, domain.AdAccountStatusActive, acc.Status)
			assert.True(t, acc.AlertEnabled)
			assert.Equal(t, "p1", acc.CredentialProfileID)
			assert.Equal(t, "970", acc.AvailableFunds.String())
			assert.Equal(t, "900", acc.Limits.Critical.String())
			assert.Equal(t, "1800", acc.Limits.Medium.String())
			assert.Equal(t, "3000", acc.Limits.Initial.String())
			require.NotNil(t, acc.LastSyncAt)
			assert.Equal(t, fixedNow, *acc.LastSyncAt)
			return nil
		})
	deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", (*time.Time)(nil)).Return(&domain.LedgerRefreshResult{}, nil)

	account, err := service.Reconcile(context.Background(), raw, "p1", "tok")

	require.NoError(t, err)
	assert.Equal(t, "Conta 111", account.Name)
}

func TestService_Reconcile_StatusChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	lastSync := time.Date(2024, 5, 9, 22, 0, 0, 0, time.UTC)
	stored := &domain.AdAccount{
		ID:           "111",
		Status:       domain.AdAccountStatusActive,
		AlertEnabled: false,
		LastSyncAt:   &lastSync,
		Limits: domain.SpendLimits{
			Critical: decimal.NewFromInt(10),
			Medium:   decimal.NewFromInt(20),
			Initial:  decimal.NewFromInt(30),
		},
	}

	deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(stored, nil)
	deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
	gomock.InOrder(
		deps.accountRepo.EXPECT().UpsertWithStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, acc *domain.AdAccount, change *domain.AccountStatusChange) error {
				assert.Equal(t, "111", change.AccountID)
				assert.Equal(t, domain.AdAccountStatusActive, change.FromStatus)
				assert.Equal(t, domain.AdAccountStatusDisabled, change.ToStatus)
				assert.Equal(t, "970", change.BalanceAtChange.String())
				assert.Equal(t, fixedNow, change.ChangedAt)
				assert.Len(t, change.ID, 12)

				assert.Equal(t, domain.AdAccountStatusDisabled, acc.Status)
				assert.True(t, acc.AlertEnabled)
				// contas existentes mantêm os limites
				assert.Equal(t, "10", acc.Limits.Critical.String())
				return nil
			}).Times(1),
		deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", &lastSync).Return(&domain.LedgerRefreshResult{}, nil),
	)

	account, err := service.Reconcile(context.Background(), rawAccount("111", "2"), "p1", "tok")

	require.NoError(t, err)
	assert.Equal(t, domain.AdAccountStatusDisabled, account.Status)
}

func TestService_Reconcile_SameStatusDoesNotAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(&domain.AdAccount{ID: "111", Status: domain.AdAccountStatusActive}, nil)
	deps.accountRepo.EXPECT().UpsertWithStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", (*time.Time)(nil)).Return(nil, domain.ErrTransientNetwork)

	// falha no ledger não invalida a reconciliação
	_, err := service.Reconcile(context.Background(), rawAccount("111", "1"), "p1", "tok")

	require.NoError(t, err)
}

func TestService_Reconcile_Errors(t *testing.T) {
	tests := []struct {
		name        string
		raw         metadomain.AdAccount
		setup       func(*testDeps)
		expectedErr error
	}{
		{
			name:        "status não inteiro viola invariante",
			raw:         rawAccount("111", "1.5"),
			setup:       func(*testDeps) {},
			expectedErr: domain.ErrInvariantViolation,
		},
		{
			name:        "status ausente viola invariante",
			raw:         rawAccount("111", ""),
			setup:       func(*testDeps) {},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:        "conta sem id",
			raw:         metadomain.AdAccount{Name: "sem id", AccountStatus: "1"},
			setup:       func(*testDeps) {},
			expectedErr: domain.ErrInvariantViolation,
		},
		{
			name: "falha na transação de auditoria não grava a conta",
			raw:  rawAccount("111", "2"),
			setup: func(deps *testDeps) {
				deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(&domain.AdAccount{ID: "111", Status: domain.AdAccountStatusActive}, nil)
				deps.accountRepo.EXPECT().UpsertWithStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: ErrRecordStatusChange,
		},
		{
			name: "falha ao buscar conta",
			raw:  rawAccount("111", "1"),
			setup: func(deps *testDeps) {
				deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(nil, errors.New("db down"))
			},
			expectedErr: ErrFindAccount,
		},
		{
			name: "falha ao gravar conta",
			raw:  rawAccount("111", "1"),
			setup: func(deps *testDeps) {
				deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(&domain.AdAccount{ID: "111", Status: domain.AdAccountStatusActive}, nil)
				deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedErr: ErrUpdateAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, deps := newTestService(ctrl)
			tt.setup(deps)

			account, err := service.Reconcile(context.Background(), tt.raw, "p1", "tok")

			assert.Nil(t, account)
			assert.ErrorIs(t, err, tt.expectedErr)

			var accountErr *AccountError
			assert.ErrorAs(t, err, &accountErr)
		})
	}
}

func TestService_Reconcile_FailedUpsertDoesNotDuplicateAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	// a transação falha na gravação da conta: o status armazenado continua ACTIVE
	stored := func() *domain.AdAccount {
		return &domain.AdAccount{ID: "111", Status: domain.AdAccountStatusActive}
	}

	var audited []*domain.AccountStatusChange

	deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").DoAndReturn(func(context.Context, string) (*domain.AdAccount, error) {
		return stored(), nil
	}).Times(2)
	gomock.InOrder(
		deps.accountRepo.EXPECT().UpsertWithStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("upsert falhou, transação desfeita")),
		deps.accountRepo.EXPECT().UpsertWithStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.AdAccount, change *domain.AccountStatusChange) error {
				audited = append(audited, change)
				return nil
			}),
	)
	deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", (*time.Time)(nil)).Return(&domain.LedgerRefreshResult{}, nil)

	_, err := service.Reconcile(context.Background(), rawAccount("111", "2"), "p1", "tok")
	require.ErrorIs(t, err, ErrRecordStatusChange)
	assert.Empty(t, audited)

	_, err = service.Reconcile(context.Background(), rawAccount("111", "2"), "p1", "tok")
	require.NoError(t, err)

	require.Len(t, audited, 1)
	assert.Equal(t, domain.AdAccountStatusActive, audited[0].FromStatus)
	assert.Equal(t, domain.AdAccountStatusDisabled, audited[0].ToStatus)
}

func TestService_Reconcile_MalformedAmountsAreZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	raw := rawAccount("111", "1")
	raw.SpendCap = "ilimitado"
	raw.Balance = ""

	deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(&domain.AdAccount{ID: "111", Status: domain.AdAccountStatusActive}, nil)
	deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.AdAccount) error {
			assert.True(t, acc.SpendCap.IsZero())
			assert.True(t, acc.Balance.IsZero())
			assert.Equal(t, "-50", acc.AvailableFunds.String())
			return nil
		})
	deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", gomock.Any()).Return(&domain.LedgerRefreshResult{}, nil)

	_, err := service.Reconcile(context.Background(), raw, "p1", "tok")

	require.NoError(t, err)
}

func accountsPage(next string, accounts ...metadomain.AdAccount) *metadomain.Page[metadomain.AdAccount] {
	page := &metadomain.Page[metadomain.AdAccount]{Data: accounts}
	if next != "" {
		page.Paging = metadomain.Paging{Cursors: metadomain.Cursors{After: next}, Next: "https://graph.facebook.com/next"}
	}
	return page
}

func TestService_SyncProfile_IsolatesAccountFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	profile := &domain.CredentialProfile{ID: "p1", CurrentAccessToken: "tok"}

	deps.client.EXPECT().ListAdAccounts(gomock.Any(), "tok", "", 100).
		Return(accountsPage("c1", rawAccount("111", "1"), rawAccount("222", "x")), nil)
	deps.client.EXPECT().ListAdAccounts(gomock.Any(), "tok", "c1", 100).
		Return(accountsPage("", rawAccount("333", "1")), nil)

	for _, id := range []string{"111", "333"} {
		deps.accountRepo.EXPECT().GetByID(gomock.Any(), id).Return(&domain.AdAccount{ID: id, Status: domain.AdAccountStatusActive}, nil)
	}
	deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", gomock.Any()).Return(&domain.LedgerRefreshResult{}, nil).Times(2)

	deps.alerts.EXPECT().EvaluateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.AdAccount) (*domain.Alert, error) {
			if acc.ID == "111" {
				return &domain.Alert{AccountID: "111", Level: domain.AlertLevelCritical}, nil
			}
			return nil, nil
		}).Times(2)

	result, err := service.SyncProfile(context.Background(), profile)

	require.NoError(t, err)
	assert.Equal(t, &SyncResult{
		ProfileID:  "p1",
		Fetched:    3,
		Pages:      2,
		StopReason: paginating.StopExhausted,
		Updated:    2,
		Failed:     1,
		Alerts:     1,
	}, result)
}

func TestService_SyncProfile_FirstPageFailureAbortsProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.client.EXPECT().ListAdAccounts(gomock.Any(), "tok", "", 100).Return(nil, domain.ErrTransientNetwork)

	result, err := service.SyncProfile(context.Background(), &domain.CredentialProfile{ID: "p1", CurrentAccessToken: "tok"})

	assert.ErrorIs(t, err, ErrFetchAccounts)
	assert.ErrorIs(t, err, domain.ErrTransientNetwork)
	assert.Equal(t, 0, result.Fetched)
}

func TestService_SyncProfile_PartialListingContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.client.EXPECT().ListAdAccounts(gomock.Any(), "tok", "", 100).Return(accountsPage("c1", rawAccount("111", "1")), nil)
	deps.client.EXPECT().ListAdAccounts(gomock.Any(), "tok", "c1", 100).Return(nil, domain.ErrTransientNetwork)

	deps.accountRepo.EXPECT().GetByID(gomock.Any(), "111").Return(&domain.AdAccount{ID: "111", Status: domain.AdAccountStatusActive}, nil)
	deps.accountRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	deps.ledger.EXPECT().Refresh(gomock.Any(), gomock.Any(), "tok", gomock.Any()).Return(&domain.LedgerRefreshResult{}, nil)
	deps.alerts.EXPECT().EvaluateAccount(gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := service.SyncProfile(context.Background(), &domain.CredentialProfile{ID: "p1", CurrentAccessToken: "tok"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, paginating.StopError, result.StopReason)
}

func TestService_SyncProfile_MissingCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	deps.client.EXPECT().ListAdAccounts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.SyncProfile(context.Background(), &domain.CredentialProfile{ID: "p1"})

	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestService_SyncProfile_UsesPreviousTokenAsFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.client.EXPECT().ListAdAccounts(gomock.Any(), "old-tok", "", 100).Return(accountsPage(""), nil)

	result, err := service.SyncProfile(context.Background(), &domain.CredentialProfile{ID: "p1", PreviousAccessToken: "old-tok"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Fetched)
}
