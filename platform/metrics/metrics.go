// Package metrics holds the Prometheus collectors for notification
// delivery, AI cache lookups and the usage gate.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aprova"

var (
	WebhookDispatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_dispatch_total",
		Help:      "Webhook dispatch attempts by notification category and outcome.",
	}, []string{"category", "outcome"})

	WebhookDispatchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "webhook_dispatch_duration_seconds",
		Help:      "Time spent waiting on webhook destinations.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"category"})

	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_cache_lookups_total",
		Help:      "AI response cache lookups by prompt type and result.",
	}, []string{"prompt_type", "result"})

	UsageGateDenials = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usage_gate_denials_total",
		Help:      "AI requests denied because the monthly limit was reached.",
	})
)

// Registry is the registry served on /metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		WebhookDispatches,
		WebhookDispatchDuration,
		CacheLookups,
		UsageGateDenials,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
