package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdAccountStatus_String(t *testing.T) {
	assert.Equal(t, "ACTIVE", AdAccountStatusActive.String())
	assert.Equal(t, "IN_GRACE_PERIOD", AdAccountStatusInGracePeriod.String())
	assert.Equal(t, "UNKNOWN(42)", AdAccountStatus(42).String())
}

func TestSpendLimits_IsZero(t *testing.T) {
	assert.True(t, SpendLimits{}.IsZero())
	assert.False(t, SpendLimits{Initial: decimal.NewFromInt(1)}.IsZero())
}

func TestAdAccount_Location(t *testing.T) {
	fallback := time.FixedZone("fallback", -3*3600)

	assert.Equal(t, fallback, (&AdAccount{}).Location(fallback))
	assert.Equal(t, fallback, (&AdAccount{Timezone: "Marte/Olympus"}).Location(fallback))
	assert.Equal(t, "America/Sao_Paulo", (&AdAccount{Timezone: "America/Sao_Paulo"}).Location(fallback).String())
}

func TestCredentialProfile_ActiveToken(t *testing.T) {
	tests := []struct {
		name        string
		profile     *CredentialProfile
		expected    string
		expectedErr error
	}{
		{name: "token atual", profile: &CredentialProfile{CurrentAccessToken: "novo", PreviousAccessToken: "velho"}, expected: "novo"},
		{name: "fallback para o anterior", profile: &CredentialProfile{PreviousAccessToken: "velho"}, expected: "velho"},
		{name: "sem token", profile: &CredentialProfile{ID: "p1"}, expectedErr: ErrMissingCredential},
		{name: "perfil nulo", profile: nil, expectedErr: ErrMissingCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.profile.ActiveToken()

			assert.Equal(t, tt.expected, token)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSyncError(t *testing.T) {
	err := NewSyncError(ErrTransientNetwork, "ledger_refresh", "p1", "111")

	assert.Equal(t, "ledger_refresh [perfil=p1 conta=111]: transient network error", err.Error())
	assert.ErrorIs(t, err, ErrTransientNetwork)

	var syncErr *SyncError
	assert.True(t, errors.As(error(err), &syncErr))
	assert.Equal(t, "111", syncErr.AccountID)

	assert.Equal(t, "listagem [perfil=p1]: x", NewSyncError(errors.New("x"), "listagem", "p1", "").Error())
	assert.Equal(t, "listagem: x", NewSyncError(errors.New("x"), "listagem", "", "").Error())
}
