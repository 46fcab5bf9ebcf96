package business

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/usecases/paginating"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	client       *metamocks.MockClient
	accountRepo  *mocks.MockAccountRepository
	businessRepo *mocks.MockBusinessEntityRepository
	profileRepo  *mocks.MockCredentialProfileRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	deps := &testDeps{
		client:       metamocks.NewMockClient(ctrl),
		accountRepo:  mocks.NewMockAccountRepository(ctrl),
		businessRepo: mocks.NewMockBusinessEntityRepository(ctrl),
		profileRepo:  mocks.NewMockCredentialProfileRepository(ctrl),
	}

	service := NewService(&paginating.Fetcher{PageSize: 100, MaxPages: 50}, deps.client, deps.accountRepo, deps.businessRepo, deps.profileRepo, nil)

	return service, deps
}

func page(next string, accounts ...metadomain.AdAccount) *metadomain.Page[metadomain.AdAccount] {
	p := &metadomain.Page[metadomain.AdAccount]{Data: accounts}
	if next != "" {
		p.Paging = metadomain.Paging{Cursors: metadomain.Cursors{After: next}, Next: "https://graph.facebook.com/next"}
	}
	return p
}

func account(id, name string) metadomain.AdAccount {
	return metadomain.AdAccount{ID: "act_" + id, AccountID: id, Name: name}
}

func TestService_Associate_DeduplicatesAcrossRelations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationOwned, "tok", "", 100).
		Return(page("c1", account("111", "Loja A")), nil)
	deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationOwned, "tok", "c1", 100).
		Return(page("", account("222", "Loja B")), nil)
	deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationClient, "tok", "", 100).
		Return(page("", metadomain.AdAccount{ID: "act_111", Name: "Loja A"}, account("333", "Cliente X")), nil)

	deps.accountRepo.EXPECT().SetBusinessEntity(gomock.Any(), "111", "b1").Return(true, nil).Times(1)
	deps.accountRepo.EXPECT().SetBusinessEntity(gomock.Any(), "222", "b1").Return(true, nil).Times(1)
	deps.accountRepo.EXPECT().SetBusinessEntity(gomock.Any(), "333", "b1").Return(false, nil).Times(1)

	report, err := service.Associate(context.Background(), "b1", "tok")

	require.NoError(t, err)
	assert.Equal(t, "b1", report.BusinessEntityID)
	assert.Equal(t, 3, report.TotalProcessed)
	assert.Equal(t, 2, report.Associated)
	assert.Equal(t, []domain.UnassociatedAccount{{ID: "333", Name: "Cliente X"}}, report.Unassociated)
}

func TestService_Associate_UpdateFailureContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationOwned, "tok", "", 100).
		Return(page("", account("111", "Loja A"), account("222", "Loja B")), nil)
	deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationClient, "tok", "", 100).
		Return(page(""), nil)

	deps.accountRepo.EXPECT().SetBusinessEntity(gomock.Any(), "111", "b1").Return(false, errors.New("db down"))
	deps.accountRepo.EXPECT().SetBusinessEntity(gomock.Any(), "222", "b1").Return(true, nil)

	report, err := service.Associate(context.Background(), "b1", "tok")

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalProcessed)
	assert.Equal(t, 1, report.Associated)
	assert.Empty(t, report.Unassociated)
}

func TestService_Associate_RelationErrors(t *testing.T) {
	t.Run("uma relação falha e a outra segue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, deps := newTestService(ctrl)

		deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationOwned, "tok", "", 100).
			Return(nil, domain.ErrTransientNetwork)
		deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", metaclient.RelationClient, "tok", "", 100).
			Return(page("", account("333", "Cliente X")), nil)
		deps.accountRepo.EXPECT().SetBusinessEntity(gomock.Any(), "333", "b1").Return(true, nil)

		report, err := service.Associate(context.Background(), "b1", "tok")

		require.NoError(t, err)
		assert.Equal(t, 1, report.Associated)
	})

	t.Run("todas as relações falham", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, deps := newTestService(ctrl)

		deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b1", gomock.Any(), "tok", "", 100).
			Return(nil, domain.ErrTransientNetwork).Times(2)

		report, err := service.Associate(context.Background(), "b1", "tok")

		assert.ErrorIs(t, err, ErrAssociationFailed)
		assert.ErrorIs(t, err, domain.ErrTransientNetwork)
		assert.Equal(t, 0, report.TotalProcessed)
	})
}

func TestService_AssociateByID(t *testing.T) {
	t.Run("business inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, deps := newTestService(ctrl)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), "b9").Return(nil, nil)

		report, err := service.AssociateByID(context.Background(), "b9")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("perfil sem token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, deps := newTestService(ctrl)
		deps.businessRepo.EXPECT().GetByID(gomock.Any(), "b1").Return(&domain.BusinessEntity{ID: "b1", CredentialProfileID: "p1"}, nil)
		deps.profileRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.CredentialProfile{ID: "p1"}, nil)
		deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := service.AssociateByID(context.Background(), "b1")

		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})
}

func TestService_AssociateAll_IsolatesEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)

	deps.businessRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.BusinessEntity{
		{ID: "b1", CredentialProfileID: "p-sem-token"},
		{ID: "b2", CredentialProfileID: "p2"},
	}, nil)
	deps.profileRepo.EXPECT().GetByID(gomock.Any(), "p-sem-token").Return(nil, nil)
	deps.profileRepo.EXPECT().GetByID(gomock.Any(), "p2").Return(&domain.CredentialProfile{ID: "p2", CurrentAccessToken: "tok2"}, nil)

	deps.client.EXPECT().ListBusinessAccounts(gomock.Any(), "b2", gomock.Any(), "tok2", "", 100).Return(page(""), nil).Times(2)

	reports, err := service.AssociateAll(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "b2", reports[0].BusinessEntityID)
}
