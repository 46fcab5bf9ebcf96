// Package alerting avalia os limites de saldo das contas e dispara notificações com cooldown.
package alerting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/notification"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
)

type AlertService interface {
	EvaluateAccount(ctx context.Context, account *domain.AdAccount) (*domain.Alert, error)
	Sweep(ctx context.Context) (*domain.SweepResult, error)
}

type outcome int

const (
	outcomeNone outcome = iota
	outcomeDisabled
	outcomeThrottled
	outcomeSent
	outcomeSendFailed
)

type Service struct {
	accountRepo repository.AccountRepository
	sender      notification.Sender
	cooldown    time.Duration
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	sender notification.Sender,
	m *metrics.Metrics,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		sender:      sender,
		cooldown:    cfg.Alerts.Cooldown(),
		metrics:     m,
		now:         time.Now,
	}
}

// Level escolhe apenas o nível mais severo atingido. Limites zerados significam alertas suspensos.
func Level(account *domain.AdAccount) domain.AlertLevel {
	if account.Limits.IsZero() {
		return domain.AlertLevelNone
	}

	funds := account.AvailableFunds
	switch {
	case funds.LessThanOrEqual(account.Limits.Critical):
		return domain.AlertLevelCritical
	case funds.LessThanOrEqual(account.Limits.Medium):
		return domain.AlertLevelMedium
	case funds.LessThanOrEqual(account.Limits.Initial):
		return domain.AlertLevelInitial
	default:
		return domain.AlertLevelNone
	}
}

// EvaluateAccount avalia uma conta logo após a reconciliação
func (s *Service) EvaluateAccount(ctx context.Context, account *domain.AdAccount) (*domain.Alert, error) {
	_, alert, err := s.evaluate(ctx, account, s.now())
	return alert, err
}

// Sweep avalia todas as contas com alerta habilitado. A falha de uma conta não interrompe as demais.
func (s *Service) Sweep(ctx context.Context) (*domain.SweepResult, error) {
	accounts, err := s.accountRepo.ListAlertEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("alerting: erro ao listar contas: %w", err)
	}

	result := &domain.SweepResult{}
	now := s.now()

	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Evaluated++

		out, _, err := s.evaluate(ctx, account, now)
		if err != nil {
			result.Failed++
			continue
		}

		switch out {
		case outcomeSent:
			result.Sent++
		case outcomeThrottled:
			result.Throttled++
		case outcomeSendFailed:
			result.Failed++
		}
	}

	logrus.WithFields(logrus.Fields{
		"evaluated": result.Evaluated,
		"sent":      result.Sent,
		"throttled": result.Throttled,
		"failed":    result.Failed,
	}).Info("alerting: varredura concluída")

	return result, nil
}

// evaluate é a única implementação da regra de limites e cooldown, usada pelos dois pontos de entrada
func (s *Service) evaluate(ctx context.Context, account *domain.AdAccount, now time.Time) (outcome, *domain.Alert, error) {
	if !account.AlertEnabled {
		return outcomeDisabled, nil, nil
	}

	if account.LastAlertSentAt != nil && now.Sub(*account.LastAlertSentAt) < s.cooldown {
		return outcomeThrottled, nil, nil
	}

	level := Level(account)
	if level == domain.AlertLevelNone {
		return outcomeNone, nil, nil
	}

	log := logrus.WithFields(logrus.Fields{
		"account_id":      account.ID,
		"level":           string(level),
		"available_funds": account.AvailableFunds.StringFixed(2),
	})

	// reserva o envio no banco antes de notificar; quem não conseguir reservar está dentro do cooldown.
	// O cooldown vale também para envios que falharem depois da reserva.
	claimed, err := s.accountRepo.ClaimAlert(ctx, account.ID, now, now.Add(-s.cooldown))
	if err != nil {
		log.WithError(err).Error("alerting: falha ao reservar o envio do alerta")
		return outcomeNone, nil, err
	}
	if !claimed {
		log.Debug("alerting: alerta já enviado por outra rotina dentro do cooldown")
		return outcomeThrottled, nil, nil
	}
	account.LastAlertSentAt = &now

	alert := &domain.Alert{
		AccountID:      account.ID,
		AccountName:    account.Name,
		Level:          level,
		AvailableFunds: account.AvailableFunds,
		Currency:       account.Currency,
		SentAt:         now,
	}

	out := outcomeSent
	if err := s.sender.Send(ctx, FormatMessage(alert)); err != nil {
		log.WithError(err).Error("alerting: falha ao enviar notificação")
		s.metrics.AlertFailed()
		out = outcomeSendFailed
	} else {
		s.metrics.AlertSent(string(level))
		log.Info("alerting: alerta de saldo enviado")
	}

	return out, alert, nil
}

var levelTitles = map[domain.AlertLevel]string{
	domain.AlertLevelCritical: "🔴 ALERTA CRÍTICO",
	domain.AlertLevelMedium:   "🟠 ALERTA MÉDIO",
	domain.AlertLevelInitial:  "🟡 ALERTA INICIAL",
}

// FormatMessage monta o texto da notificação (HTML do Telegram). Campos vindos da plataforma são escapados.
func FormatMessage(alert *domain.Alert) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<b>%s</b>\n", levelTitles[alert.Level]))
	b.WriteString(fmt.Sprintf("Conta: %s (%s)\n", html.EscapeString(alert.AccountName), html.EscapeString(alert.AccountID)))
	b.WriteString(fmt.Sprintf("Saldo disponível: %s %s", html.EscapeString(alert.Currency), alert.AvailableFunds.StringFixed(2)))

	return b.String()
}
