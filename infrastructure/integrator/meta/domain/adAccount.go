package metadomain

import (
	"encoding/json"
	"strings"
)

// AccountIDPrefix é o prefixo que a Graph API coloca nos ids de conta de anúncio
const AccountIDPrefix = "act_"

// AdAccount é a conta de anúncio como a Graph API a devolve (valores numéricos em texto, centavos)
type AdAccount struct {
	AccountID     string      `json:"account_id"`
	AccountStatus json.Number `json:"account_status"`
	AmountSpent   string      `json:"amount_spent"`
	Balance       string      `json:"balance"`
	BusinessID    string      `json:"business_id,omitempty"`
	Currency      string      `json:"currency"`
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	SpendCap      string      `json:"spend_cap"`
	TimezoneName  string      `json:"timezone_name"`
}

// NormalizedID retorna o id sem o prefixo "act_"
func (a AdAccount) NormalizedID() string {
	if a.AccountID != "" {
		return NormalizeAccountID(a.AccountID)
	}
	return NormalizeAccountID(a.ID)
}

// NormalizeAccountID remove o prefixo "act_" de um id de conta
func NormalizeAccountID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), AccountIDPrefix)
}

// AdAccountFields são os campos pedidos na listagem de contas
const AdAccountFields = "id,account_id,name,account_status,currency,timezone_name,amount_spent,spend_cap,balance,business_id"

// BusinessAdAccountFields são os campos pedidos nas relações do business
const BusinessAdAccountFields = "id,account_id,name"
