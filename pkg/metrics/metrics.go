// Package metrics - счётчики Prometheus дашборда на собственном реестре.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bankdash"

type Metrics struct {
	Registry *prometheus.Registry

	crudOperations *prometheus.CounterVec
	geocodeLookups *prometheus.CounterVec
	chartRenders   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		crudOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crud_operations_total",
			Help:      "CRUD operations by table, operation and result.",
		}, []string{"table", "operation", "result"}),
		geocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_lookups_total",
			Help:      "Geocoding lookups by result: hit, miss, error, cache.",
		}, []string{"result"}),
		chartRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_renders_total",
			Help:      "Visualization renders by chart key and result.",
		}, []string{"chart", "result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.crudOperations,
		m.geocodeLookups,
		m.chartRenders,
		m.httpDuration,
	)
	return m
}

// Handler отдаёт метрики реестра для /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Методы ниже допускают nil-получатель: сервисы в тестах собираются без метрик.

func (m *Metrics) CRUD(table, operation string, err error) {
	if m == nil {
		return
	}
	m.crudOperations.WithLabelValues(table, operation, result(err)).Inc()
}

func (m *Metrics) Geocode(outcome string) {
	if m == nil {
		return
	}
	m.geocodeLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Chart(key string, err error) {
	if m == nil {
		return
	}
	m.chartRenders.WithLabelValues(key, result(err)).Inc()
}

func (m *Metrics) ObserveHTTP(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(route, method, status).Observe(seconds)
}
