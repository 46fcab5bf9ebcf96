package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySpendEntry é o gasto de uma conta em um dia, em centavos. Chave única (AccountID, Date).
type DailySpendEntry struct {
	AccountID string          `json:"account_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DateRange é o intervalo de datas (inclusivo) consultado na plataforma
type DateRange struct {
	Since time.Time
	Until time.Time
}

// LedgerRefreshResult resume uma atualização do ledger de uma conta
type LedgerRefreshResult struct {
	AccountID     string          `json:"account_id"`
	DaysWritten   int             `json:"days_written"`
	Pages         int             `json:"pages"`
	LifetimeSpend decimal.Decimal `json:"lifetime_spend"`
}
