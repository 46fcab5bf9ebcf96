package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a disponibilidade de uma dependência
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		status := http.StatusOK
		database := "ok"
		if err := db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("Healthcheck: banco de dados indisponível")
			status = http.StatusServiceUnavailable
			database = "unavailable"
		}

		writeJSON(w, status, map[string]any{
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
		})
	})
}

// MetricsHandler expõe o registry próprio da aplicação
func MetricsHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
