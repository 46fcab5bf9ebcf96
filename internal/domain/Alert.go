package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertLevel string

const (
	AlertLevelNone     AlertLevel = ""
	AlertLevelCritical AlertLevel = "CRITICAL"
	AlertLevelMedium   AlertLevel = "MEDIUM"
	AlertLevelInitial  AlertLevel = "INITIAL"
)

// Alert é uma notificação de saldo disparada para uma conta
type Alert struct {
	AccountID      string          `json:"account_id"`
	AccountName    string          `json:"account_name"`
	Level          AlertLevel      `json:"level"`
	AvailableFunds decimal.Decimal `json:"available_funds"`
	Currency       string          `json:"currency"`
	SentAt         time.Time       `json:"sent_at"`
}

// SweepResult resume uma varredura de alertas
type SweepResult struct {
	Evaluated int `json:"evaluated"`
	Sent      int `json:"sent"`
	Throttled int `json:"throttled"`
	Failed    int `json:"failed"`
}
