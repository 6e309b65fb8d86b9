package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Connection pool
	DBConnectionsOpen  prometheus.Gauge
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
}

// New создает и регистрирует метрики сервиса в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		DBConnectionsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),

		DBConnectionsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
	}
}
