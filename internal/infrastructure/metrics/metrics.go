package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docdesk"

// Collectors agrupa as métricas da aplicação
type Collectors struct {
	registry           *prometheus.Registry
	DocumentOperations *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New cria e registra os collectors num registry próprio
func New() *Collectors {
	c := &Collectors{
		registry: prometheus.NewRegistry(),
		DocumentOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "document_operations_total", Help: "Document operations by outcome."},
			[]string{"operation", "outcome"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route and status."},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency.", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
	}

	c.registry.MustRegister(
		c.DocumentOperations,
		c.HTTPRequests,
		c.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// RecordOperation implementa ports.OperationRecorder
func (c *Collectors) RecordOperation(operation, outcome string) {
	c.DocumentOperations.WithLabelValues(operation, outcome).Inc()
}

// Handler expõe o registry no formato Prometheus
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry retorna o registry usado pelos collectors
func (c *Collectors) Registry() *prometheus.Registry {
	return c.registry
}
