package alerting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	notificationmocks "github.com/vfg2006/ad-balance-monitor/infrastructure/notification/mocks"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func limits(critical, medium, initial int64) domain.SpendLimits {
	return domain.SpendLimits{
		Critical: decimal.NewFromInt(critical),
		Medium:   decimal.NewFromInt(medium),
		Initial:  decimal.NewFromInt(initial),
	}
}

func newTestService(accountRepo *mocks.MockAccountRepository, sender *notificationmocks.MockSender) *Service {
	return &Service{
		accountRepo: accountRepo,
		sender:      sender,
		cooldown:    30 * time.Minute,
		now:         func() time.Time { return fixedNow },
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		funds    int64
		limits   domain.SpendLimits
		expected domain.AlertLevel
	}{
		{name: "abaixo de todos os limites gera apenas CRITICAL", funds: 50, limits: limits(100, 200, 300), expected: domain.AlertLevelCritical},
		{name: "igual ao limite crítico", funds: 100, limits: limits(100, 200, 300), expected: domain.AlertLevelCritical},
		{name: "entre crítico e médio", funds: 150, limits: limits(100, 200, 300), expected: domain.AlertLevelMedium},
		{name: "entre médio e inicial", funds: 300, limits: limits(100, 200, 300), expected: domain.AlertLevelInitial},
		{name: "acima de todos os limites", funds: 301, limits: limits(100, 200, 300), expected: domain.AlertLevelNone},
		{name: "limites zerados suspendem alertas", funds: -10, limits: limits(0, 0, 0), expected: domain.AlertLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &domain.AdAccount{AvailableFunds: decimal.NewFromInt(tt.funds), Limits: tt.limits}
			assert.Equal(t, tt.expected, Level(account))
		})
	}
}

func TestService_EvaluateAccount(t *testing.T) {
	tests := []struct {
		name          string
		account       *domain.AdAccount
		setup         func(*mocks.MockAccountRepository, *notificationmocks.MockSender)
		expectedLevel domain.AlertLevel
		expectErr     bool
	}{
		{
			name: "envia somente o nível mais severo",
			account: &domain.AdAccount{
				ID: "123", Name: "Loja A", Currency: "BRL", AlertEnabled: true,
				AvailableFunds: decimal.NewFromInt(50), Limits: limits(100, 200, 300),
			},
			setup: func(repo *mocks.MockAccountRepository, sender *notificationmocks.MockSender) {
				gomock.InOrder(
					repo.EXPECT().ClaimAlert(gomock.Any(), "123", fixedNow, fixedNow.Add(-30*time.Minute)).Return(true, nil),
					sender.EXPECT().Send(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, text string) error {
							assert.Contains(t, text, "CRÍTICO")
							assert.NotContains(t, text, "MÉDIO")
							assert.Contains(t, text, "BRL 50.00")
							return nil
						}).Times(1),
				)
			},
			expectedLevel: domain.AlertLevelCritical,
		},
		{
			name: "alerta desabilitado não envia",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: false,
				AvailableFunds: decimal.NewFromInt(50), Limits: limits(100, 200, 300),
			},
			setup:         func(*mocks.MockAccountRepository, *notificationmocks.MockSender) {},
			expectedLevel: domain.AlertLevelNone,
		},
		{
			name: "dentro do cooldown não envia, qualquer que seja o nível",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: true, LastAlertSentAt: timePtr(fixedNow.Add(-29 * time.Minute)),
				AvailableFunds: decimal.NewFromInt(50), Limits: limits(100, 200, 300),
			},
			setup:         func(*mocks.MockAccountRepository, *notificationmocks.MockSender) {},
			expectedLevel: domain.AlertLevelNone,
		},
		{
			name: "fora do cooldown envia",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: true, LastAlertSentAt: timePtr(fixedNow.Add(-31 * time.Minute)),
				AvailableFunds: decimal.NewFromInt(250), Limits: limits(100, 200, 300),
			},
			setup: func(repo *mocks.MockAccountRepository, sender *notificationmocks.MockSender) {
				repo.EXPECT().ClaimAlert(gomock.Any(), "123", fixedNow, fixedNow.Add(-30*time.Minute)).Return(true, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedLevel: domain.AlertLevelInitial,
		},
		{
			name: "saldo acima dos limites não envia",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: true,
				AvailableFunds: decimal.NewFromInt(1000), Limits: limits(100, 200, 300),
			},
			setup:         func(*mocks.MockAccountRepository, *notificationmocks.MockSender) {},
			expectedLevel: domain.AlertLevelNone,
		},
		{
			name: "falha no envio é registrada e o cooldown é gravado",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: true,
				AvailableFunds: decimal.NewFromInt(150), Limits: limits(100, 200, 300),
			},
			setup: func(repo *mocks.MockAccountRepository, sender *notificationmocks.MockSender) {
				repo.EXPECT().ClaimAlert(gomock.Any(), "123", fixedNow, fixedNow.Add(-30*time.Minute)).Return(true, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))
			},
			expectedLevel: domain.AlertLevelMedium,
		},
		{
			name: "falha ao reservar o alerta é devolvida sem enviar",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: true,
				AvailableFunds: decimal.NewFromInt(150), Limits: limits(100, 200, 300),
			},
			setup: func(repo *mocks.MockAccountRepository, sender *notificationmocks.MockSender) {
				repo.EXPECT().ClaimAlert(gomock.Any(), "123", fixedNow, gomock.Any()).Return(false, errors.New("db down"))
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedLevel: domain.AlertLevelNone,
			expectErr:     true,
		},
		{
			name: "alerta já reservado por outra rotina não envia",
			account: &domain.AdAccount{
				ID: "123", AlertEnabled: true,
				AvailableFunds: decimal.NewFromInt(50), Limits: limits(100, 200, 300),
			},
			setup: func(repo *mocks.MockAccountRepository, sender *notificationmocks.MockSender) {
				repo.EXPECT().ClaimAlert(gomock.Any(), "123", fixedNow, gomock.Any()).Return(false, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedLevel: domain.AlertLevelNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockAccountRepository(ctrl)
			sender := notificationmocks.NewMockSender(ctrl)
			tt.setup(repo, sender)

			alert, err := newTestService(repo, sender).EvaluateAccount(context.Background(), tt.account)

			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			if tt.expectedLevel == domain.AlertLevelNone {
				assert.Nil(t, alert)
				return
			}
			require.NotNil(t, alert)
			assert.Equal(t, tt.expectedLevel, alert.Level)
		})
	}
}

func TestService_EvaluateAccount_RepeatedEvaluationsRespectCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	sender := notificationmocks.NewMockSender(ctrl)
	service := newTestService(repo, sender)

	account := &domain.AdAccount{
		ID: "123", AlertEnabled: true,
		AvailableFunds: decimal.NewFromInt(10), Limits: limits(100, 200, 300),
	}

	repo.EXPECT().ClaimAlert(gomock.Any(), "123", gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	for i := 0; i < 5; i++ {
		current := fixedNow.Add(time.Duration(i) * 5 * time.Minute)
		service.now = func() time.Time { return current }

		_, err := service.EvaluateAccount(context.Background(), account)
		require.NoError(t, err)
	}
}

func TestService_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	sender := notificationmocks.NewMockSender(ctrl)
	service := newTestService(repo, sender)

	// repositório em memória: o horário gravado volta na próxima varredura
	stored := map[string]*time.Time{}
	accounts := func() []*domain.AdAccount {
		return []*domain.AdAccount{
			{ID: "crit", AlertEnabled: true, AvailableFunds: decimal.NewFromInt(10), Limits: limits(100, 200, 300), LastAlertSentAt: stored["crit"]},
			{ID: "ok", AlertEnabled: true, AvailableFunds: decimal.NewFromInt(900), Limits: limits(100, 200, 300), LastAlertSentAt: stored["ok"]},
			{ID: "fail", AlertEnabled: true, AvailableFunds: decimal.NewFromInt(150), Limits: limits(100, 200, 300), LastAlertSentAt: stored["fail"]},
		}
	}

	repo.EXPECT().ListAlertEnabled(gomock.Any()).DoAndReturn(func(context.Context) ([]*domain.AdAccount, error) {
		return accounts(), nil
	}).Times(2)
	repo.EXPECT().ClaimAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, sentAt, _ time.Time) (bool, error) {
			stored[id] = &sentAt
			return true, nil
		}).Times(2)

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, text string) error {
			if strings.Contains(text, "(fail)") {
				return errors.New("telegram down")
			}
			return nil
		}).Times(2)

	first, err := service.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.SweepResult{Evaluated: 3, Sent: 1, Failed: 1}, first)

	service.now = func() time.Time { return fixedNow.Add(10 * time.Minute) }

	second, err := service.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.SweepResult{Evaluated: 3, Throttled: 2}, second)
}

func TestService_Sweep_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	repo.EXPECT().ListAlertEnabled(gomock.Any()).Return(nil, errors.New("db down"))

	result, err := newTestService(repo, nil).Sweep(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name        string
		accountName string
		expected    string
	}{
		{
			name:        "nome simples",
			accountName: "Loja A",
			expected:    "<b>🟠 ALERTA MÉDIO</b>\nConta: Loja A (123)\nSaldo disponível: BRL 150.50",
		},
		{
			name:        "nome com caracteres reservados do HTML",
			accountName: "Loja A & B <Centro>",
			expected:    "<b>🟠 ALERTA MÉDIO</b>\nConta: Loja A &amp; B &lt;Centro&gt; (123)\nSaldo disponível: BRL 150.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := FormatMessage(&domain.Alert{
				AccountID:      "123",
				AccountName:    tt.accountName,
				Level:          domain.AlertLevelMedium,
				AvailableFunds: decimal.RequireFromString("150.5"),
				Currency:       "BRL",
			})

			assert.Equal(t, tt.expected, text)
		})
	}
}
