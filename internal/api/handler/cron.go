package handler

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/scheduler"
	"github.com/vfg2006/ad-balance-monitor/pkg/apiErrors"
)

// Tipos de cron job aceitos na URL
const (
	CronJobTypeBalanceSync         = "balance-sync"
	CronJobTypeLedgerRecompute     = "ledger-recompute"
	CronJobTypeBusinessAssociation = "business-association"
	CronJobTypeAlertSweep          = "alert-sweep"
	CronJobTypeLimitAdjust         = "limit-adjust"
	CronJobTypeAll                 = "all"
)

// CronJobServices contém as rotinas que podem ser executadas manualmente
type CronJobServices struct {
	BalanceSync         scheduler.Job
	LedgerRecompute     scheduler.Job
	BusinessAssociation scheduler.Job
	AlertSweep          scheduler.Job
	LimitAdjust         scheduler.Job
}

func (s CronJobServices) byType() map[string]scheduler.Job {
	jobs := map[string]scheduler.Job{}
	for cronType, job := range map[string]scheduler.Job{
		CronJobTypeBalanceSync:         s.BalanceSync,
		CronJobTypeLedgerRecompute:     s.LedgerRecompute,
		CronJobTypeBusinessAssociation: s.BusinessAssociation,
		CronJobTypeAlertSweep:          s.AlertSweep,
		CronJobTypeLimitAdjust:         s.LimitAdjust,
	} {
		if job != nil {
			jobs[cronType] = job
		}
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		jobs := services.byType()

		if cronType == CronJobTypeAll {
			started := map[string]bool{}
			for jobType, job := range jobs {
				started[jobType] = job.TriggerManualSync()
			}
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron jobs iniciadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, ok := jobs[cronType]
		if !ok {
			accepted := make([]string, 0, len(jobs)+1)
			for jobType := range jobs {
				accepted = append(accepted, jobType)
			}
			slices.Sort(accepted)
			accepted = append(accepted, CronJobTypeAll)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{"accepted": accepted})
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já em andamento", map[string]any{"type": cronType})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for cronType, job := range services.byType() {
			status[cronType] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
