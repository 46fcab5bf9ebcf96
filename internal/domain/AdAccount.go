package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AdAccountStatus é o código numérico de status retornado pela plataforma (account_status)
type AdAccountStatus int

const (
	AdAccountStatusActive            AdAccountStatus = 1
	AdAccountStatusDisabled          AdAccountStatus = 2
	AdAccountStatusUnsettled         AdAccountStatus = 3
	AdAccountStatusPendingRiskReview AdAccountStatus = 7
	AdAccountStatusPendingSettlement AdAccountStatus = 8
	AdAccountStatusInGracePeriod     AdAccountStatus = 9
	AdAccountStatusPendingClosure    AdAccountStatus = 100
	AdAccountStatusClosed            AdAccountStatus = 101
	AdAccountStatusAnyActive         AdAccountStatus = 201
	AdAccountStatusAnyClosed         AdAccountStatus = 202
)

var adAccountStatusNames = map[AdAccountStatus]string{
	AdAccountStatusActive:            "ACTIVE",
	AdAccountStatusDisabled:          "DISABLED",
	AdAccountStatusUnsettled:         "UNSETTLED",
	AdAccountStatusPendingRiskReview: "PENDING_RISK_REVIEW",
	AdAccountStatusPendingSettlement: "PENDING_SETTLEMENT",
	AdAccountStatusInGracePeriod:     "IN_GRACE_PERIOD",
	AdAccountStatusPendingClosure:    "PENDING_CLOSURE",
	AdAccountStatusClosed:            "CLOSED",
	AdAccountStatusAnyActive:         "ANY_ACTIVE",
	AdAccountStatusAnyClosed:         "ANY_CLOSED",
}

func (s AdAccountStatus) String() string {
	if name, ok := adAccountStatusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

// SpendLimits são os limites de alerta, na mesma unidade de AvailableFunds (unidade principal)
type SpendLimits struct {
	Critical decimal.Decimal `json:"critical"`
	Medium   decimal.Decimal `json:"medium"`
	Initial  decimal.Decimal `json:"initial"`
}

// IsZero indica que os limites estão zerados (alertas suspensos até o gasto voltar)
func (l SpendLimits) IsZero() bool {
	return l.Critical.IsZero() && l.Medium.IsZero() && l.Initial.IsZero()
}

// AdAccount representa a conta de anúncios armazenada localmente.
//
// Unidades monetárias por campo:
//   - LifetimeSpend, AmountSpent, SpendCap, Balance: unidade mínima (centavos)
//   - AvailableFunds, Limits: unidade principal
type AdAccount struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Status              AdAccountStatus `json:"status"`
	Currency            string          `json:"currency"`
	Timezone            string          `json:"timezone"`
	LifetimeSpend       decimal.Decimal `json:"lifetime_spend"`
	AmountSpent         decimal.Decimal `json:"amount_spent"`
	SpendCap            decimal.Decimal `json:"spend_cap"`
	Balance             decimal.Decimal `json:"balance"`
	AvailableFunds      decimal.Decimal `json:"available_funds"`
	Limits              SpendLimits     `json:"limits"`
	AlertEnabled        bool            `json:"alert_enabled"`
	LastAlertSentAt     *time.Time      `json:"last_alert_sent_at"`
	LastSyncAt          *time.Time      `json:"last_sync_at"`
	BusinessEntityID    *string         `json:"business_entity_id"`
	CredentialProfileID string          `json:"credential_profile_id"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Location retorna o fuso horário da conta, ou o fallback quando o nome é inválido
func (a *AdAccount) Location(fallback *time.Location) *time.Location {
	if a.Timezone == "" {
		return fallback
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return fallback
	}

	return loc
}

// AccountStatusChange é um registro de auditoria imutável de mudança de status
type AccountStatusChange struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	FromStatus      AdAccountStatus `json:"from_status"`
	ToStatus        AdAccountStatus `json:"to_status"`
	BalanceAtChange decimal.Decimal `json:"balance_at_change"`
	ChangedAt       time.Time       `json:"changed_at"`
}

// BusinessEntity é o agrupador da plataforma (Business Manager) dono ou gestor de contas
type BusinessEntity struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	CredentialProfileID string `json:"credential_profile_id"`
}

// UnassociatedAccount é uma conta vista na plataforma sem correspondente local
type UnassociatedAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AssociationReport é o resultado da associação de um business às suas contas
type AssociationReport struct {
	BusinessEntityID string                `json:"business_entity_id"`
	TotalProcessed   int                   `json:"total_processed"`
	Associated       int                   `json:"associated"`
	Unassociated     []UnassociatedAccount `json:"unassociated"`
}
