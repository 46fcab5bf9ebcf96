package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	alertmocks "github.com/vfg2006/ad-balance-monitor/internal/usecases/alerting/mocks"
	businessmocks "github.com/vfg2006/ad-balance-monitor/internal/usecases/business/mocks"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/ledger"
	ledgermocks "github.com/vfg2006/ad-balance-monitor/internal/usecases/ledger/mocks"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/limits"
	limitsmocks "github.com/vfg2006/ad-balance-monitor/internal/usecases/limits/mocks"
	"go.uber.org/mock/gomock"
)

func TestLedgerRecomputeService_recompute(t *testing.T) {
	t.Run("recálculo concluído", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLedger := ledgermocks.NewMockLedgerService(ctrl)
		service := &LedgerRecomputeService{ledger: mockLedger}

		mockLedger.EXPECT().RecomputeAll(gomock.Any()).Return(&ledger.RecomputeResult{Refreshed: 2}, nil)

		service.recompute(context.Background())

		assert.Equal(t, "", service.GetStatus()["last_error"])
	})

	t.Run("falha no recálculo fica no status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLedger := ledgermocks.NewMockLedgerService(ctrl)
		service := &LedgerRecomputeService{ledger: mockLedger}

		mockLedger.EXPECT().RecomputeAll(gomock.Any()).Return(nil, errors.New("db down"))

		service.recompute(context.Background())

		assert.Equal(t, "db down", service.GetStatus()["last_error"])
	})
}

func TestLimitAdjustService_adjust(t *testing.T) {
	tests := []struct {
		name          string
		returnResult  *limits.AdjustResult
		returnErr     error
		expectedError string
	}{
		{
			name:         "limites ajustados",
			returnResult: &limits.AdjustResult{Adjusted: 3, Suspended: 1},
		},
		{
			name:          "falha no ajuste fica no status",
			returnErr:     errors.New("db down"),
			expectedError: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAdjuster := limitsmocks.NewMockLimitAdjuster(ctrl)
			service := &LimitAdjustService{adjuster: mockAdjuster}

			mockAdjuster.EXPECT().AdjustAll(gomock.Any()).Return(tt.returnResult, tt.returnErr)

			service.adjust(context.Background())

			assert.Equal(t, tt.expectedError, service.GetStatus()["last_error"])
		})
	}
}

func TestLimitAdjustService_StartUsesOwnSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		App:             config.App{Timezone: "UTC"},
		LedgerRecompute: config.LedgerRecompute{CronSchedule: "0 0 * * *", Enabled: true},
		LimitAdjust:     config.LimitAdjust{CronSchedule: "15 * * * *", Enabled: true},
	}

	mockAdjuster := limitsmocks.NewMockLimitAdjuster(ctrl)
	mockAdjuster.EXPECT().AdjustAll(gomock.Any()).Return(&limits.AdjustResult{}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewLimitAdjustService(mockAdjuster, cfg, nil)
	require.NoError(t, service.Start(ctx))

	jobs := service.scheduler.Jobs()
	require.Len(t, jobs, 1)
	next := jobs[0].NextRun()
	assert.Equal(t, 15, next.Minute())
	assert.True(t, time.Until(next) <= time.Hour, "próxima execução em %s", next)

	ledgerService := NewLedgerRecomputeService(ledgermocks.NewMockLedgerService(ctrl), cfg, nil)
	assert.Equal(t, "15 * * * *", service.GetStatus()["sync_cron"])
	assert.NotEqual(t, ledgerService.GetStatus()["sync_cron"], service.GetStatus()["sync_cron"])
}

func TestBusinessAssociationService_associateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssociation := businessmocks.NewMockAssociationService(ctrl)
	service := &BusinessAssociationService{association: mockAssociation}

	mockAssociation.EXPECT().AssociateAll(gomock.Any()).Return([]*domain.AssociationReport{
		{BusinessEntityID: "b1", TotalProcessed: 2, Associated: 1, Unassociated: []domain.UnassociatedAccount{{ID: "9"}}},
	}, nil)

	service.associateAll(context.Background())

	status := service.GetStatus()
	assert.Equal(t, "", status["last_error"])
	assert.False(t, status["last_sync_completed_at"].(interface{ IsZero() bool }).IsZero())
}

func TestAlertSweepService_sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAlerts := alertmocks.NewMockAlertService(ctrl)
	service := &AlertSweepService{alerts: mockAlerts}

	mockAlerts.EXPECT().Sweep(gomock.Any()).Return(nil, domain.ErrTransientNetwork)

	service.sweep(context.Background())

	assert.Equal(t, domain.ErrTransientNetwork.Error(), service.GetStatus()["last_error"])
}
