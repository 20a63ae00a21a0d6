// Package metrics expone las métricas Prometheus del MID.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal cuenta las llamadas salientes por servicio remoto, método y status.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "condominios_mid",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total de llamadas salientes por servicio remoto",
		},
		[]string{"upstream", "method", "status_code"},
	)

	// UpstreamRequestDuration mide la duración de las llamadas salientes.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "condominios_mid",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duración de las llamadas salientes en segundos",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"upstream", "method"},
	)

	// DecodeDegradedTotal cuenta las respuestas cuyo contenido anidado no se pudo interpretar.
	DecodeDegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "condominios_mid",
			Subsystem: "envelope",
			Name:      "degraded_total",
			Help:      "Respuestas del backend degradadas a lista vacía",
		},
		[]string{"recurso"},
	)

	// TasaLookupsTotal cuenta las consultas de tasa por resultado (cache, api, oficial, error).
	TasaLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "condominios_mid",
			Subsystem: "tasas",
			Name:      "lookups_total",
			Help:      "Consultas de tasa de cambio por resultado",
		},
		[]string{"resultado"},
	)

	// SesionesActivas refleja las sesiones creadas menos las cerradas en esta réplica.
	SesionesActivas = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "condominios_mid",
			Subsystem: "sesiones",
			Name:      "activas",
			Help:      "Sesiones abiertas en esta réplica",
		},
	)
)

// ObserveUpstream registra una llamada saliente. status 0 indica error de transporte.
func ObserveUpstream(upstream, method string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(upstream, method, code).Inc()
	UpstreamRequestDuration.WithLabelValues(upstream, method).Observe(elapsed.Seconds())
}
