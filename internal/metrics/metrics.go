// Package metrics concentra as métricas Prometheus do monitor de saldos.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics guarda as métricas registradas em um registry próprio (exposto em /metrics).
// Todos os métodos aceitam receptor nil.
type Metrics struct {
	Registry *prometheus.Registry

	jobRuns        *prometheus.CounterVec
	jobDuration    *prometheus.HistogramVec
	jobSkipped     *prometheus.CounterVec
	pagesFetched   *prometheus.CounterVec
	paginationStop *prometheus.CounterVec
	platformErrors *prometheus.CounterVec
	accountsSynced *prometheus.CounterVec
	ledgerDays     prometheus.Counter
	alertsSent     *prometheus.CounterVec
	alertsFailed   prometheus.Counter
	unassociated   prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_job_runs_total",
				Help: "Execuções de jobs agendados por resultado.",
			},
			[]string{"job", "result"},
		),
		jobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adbalance_job_duration_seconds",
				Help:    "Duração das execuções de jobs agendados.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
			},
			[]string{"job"},
		),
		jobSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_job_skipped_total",
				Help: "Disparos ignorados porque a execução anterior ainda estava em andamento.",
			},
			[]string{"job"},
		),
		pagesFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_pages_fetched_total",
				Help: "Páginas obtidas da plataforma por recurso.",
			},
			[]string{"resource"},
		),
		paginationStop: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_pagination_stops_total",
				Help: "Motivo de término das paginações.",
			},
			[]string{"resource", "reason"},
		),
		platformErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_platform_errors_total",
				Help: "Erros nas chamadas à plataforma de anúncios.",
			},
			[]string{"operation"},
		),
		accountsSynced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_accounts_reconciled_total",
				Help: "Contas reconciliadas por resultado.",
			},
			[]string{"result"},
		),
		ledgerDays: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "adbalance_ledger_days_written_total",
				Help: "Dias de gasto gravados no ledger.",
			},
		),
		alertsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbalance_alerts_sent_total",
				Help: "Alertas de saldo enviados por nível.",
			},
			[]string{"level"},
		),
		alertsFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "adbalance_alerts_failed_total",
				Help: "Falhas no envio de alertas.",
			},
		),
		unassociated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "adbalance_unassociated_accounts_total",
				Help: "Contas de business sem correspondência local.",
			},
		),
	}
}

func (m *Metrics) ObserveJob(job string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
	m.jobDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
}

func (m *Metrics) JobSkipped(job string) {
	if m == nil {
		return
	}
	m.jobSkipped.WithLabelValues(job).Inc()
}

func (m *Metrics) PageFetched(resource string) {
	if m == nil {
		return
	}
	m.pagesFetched.WithLabelValues(resource).Inc()
}

func (m *Metrics) PaginationStopped(resource, reason string) {
	if m == nil {
		return
	}
	m.paginationStop.WithLabelValues(resource, reason).Inc()
}

func (m *Metrics) PlatformError(operation string) {
	if m == nil {
		return
	}
	m.platformErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) AccountReconciled(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.accountsSynced.WithLabelValues(result).Inc()
}

func (m *Metrics) LedgerDaysWritten(n int) {
	if m == nil {
		return
	}
	m.ledgerDays.Add(float64(n))
}

func (m *Metrics) AlertSent(level string) {
	if m == nil {
		return
	}
	m.alertsSent.WithLabelValues(level).Inc()
}

func (m *Metrics) AlertFailed() {
	if m == nil {
		return
	}
	m.alertsFailed.Inc()
}

func (m *Metrics) Unassociated(n int) {
	if m == nil {
		return
	}
	m.unassociated.Add(float64(n))
}
