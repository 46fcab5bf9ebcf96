// Package limits calcula os limites dinâmicos de alerta a partir do ritmo de gasto do dia.
package limits

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

var oneHour = decimal.NewFromInt(1)

// Calculator transforma o gasto de hoje em três limites: fundos para ~1,5h, ~3h e ~5h de gasto
type Calculator struct {
	criticalMultiplier decimal.Decimal
	mediumMultiplier   decimal.Decimal
	initialMultiplier  decimal.Decimal
	defaults           domain.SpendLimits
}

func NewCalculator(cfg config.Alerts) *Calculator {
	return &Calculator{
		criticalMultiplier: decimal.NewFromFloat(cfg.CriticalMultiplier),
		mediumMultiplier:   decimal.NewFromFloat(cfg.MediumMultiplier),
		initialMultiplier:  decimal.NewFromFloat(cfg.InitialMultiplier),
		defaults: domain.SpendLimits{
			Critical: decimal.NewFromFloat(cfg.DefaultCritical),
			Medium:   decimal.NewFromFloat(cfg.DefaultMedium),
			Initial:  decimal.NewFromFloat(cfg.DefaultInitial),
		},
	}
}

// Calculate devolve os limites na mesma unidade de todaySpend. Sem gasto hoje (<= 0)
// devolve os limites padrão.
func (c *Calculator) Calculate(todaySpend decimal.Decimal, now time.Time, loc *time.Location) domain.SpendLimits {
	if !todaySpend.IsPositive() {
		return c.defaults
	}

	hourlyRate := todaySpend.Div(ElapsedHours(now, loc))

	return domain.SpendLimits{
		Critical: hourlyRate.Mul(c.criticalMultiplier).Round(0),
		Medium:   hourlyRate.Mul(c.mediumMultiplier).Round(0),
		Initial:  hourlyRate.Mul(c.initialMultiplier).Round(0),
	}
}

// Defaults são os limites conservadores usados quando não há gasto no dia
func (c *Calculator) Defaults() domain.SpendLimits {
	return c.defaults
}

// ElapsedHours são as horas desde a meia-noite local, no mínimo 1
func ElapsedHours(now time.Time, loc *time.Location) decimal.Decimal {
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	hours := decimal.NewFromFloat(local.Sub(midnight).Hours())
	if hours.LessThan(oneHour) {
		return oneHour
	}

	return hours
}

// Today devolve a data de hoje (meia-noite) no fuso informado
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
