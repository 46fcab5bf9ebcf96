// Package scheduler agenda as rotinas periódicas de sincronização, ledger, associação e alertas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Job é uma rotina agendada que também pode ser disparada manualmente pela API
type Job interface {
	Name() string
	Start(ctx context.Context) error
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// JobConfig representa a configuração de agendamento de uma rotina
type JobConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// jobStatus guarda os horários e o último erro de uma rotina
type jobStatus struct {
	mu              sync.RWMutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func (s *jobStatus) started(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastStartedAt = at
}

func (s *jobStatus) completed(at time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCompletedAt = at
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *jobStatus) fill(status map[string]any) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status["last_sync_started_at"] = s.lastStartedAt
	status["last_sync_completed_at"] = s.lastCompletedAt
	status["last_error"] = s.lastError
	return status
}

// startCron agenda fn na expressão cron e para o agendador quando o contexto é cancelado
func startCron(ctx context.Context, scheduler *gocron.Scheduler, name string, cfg JobConfig, fn func()) error {
	if !cfg.SyncEnabled {
		logrus.WithField("job", name).Info("Rotina desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  name,
		"cron": cfg.CronSchedule,
	}).Info("Iniciando agendador")

	if _, err := scheduler.Cron(cfg.CronSchedule).Do(fn); err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", name, err)
	}

	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", name).Info("Parando agendador")
		scheduler.Stop()
	}()

	return nil
}
