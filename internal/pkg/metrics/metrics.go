// Package metrics exposes the service's Prometheus collectors on a private
// registry.
package metrics

import (
	"net/http"

	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "errands"

	outcomeOK     = "ok"
	unknownTarget = "unknown"
)

// Entities reported by SetStatusCounts.
const (
	EntityShopperOrder   = "shopper_order"
	EntityShopperRequest = "shopper_order_request"
	EntityRunnerRequest  = "runner_order_request"
)

type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	statuses    *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_transitions_total",
			Help:      "Request status transition attempts by orientation, target status and outcome.",
		}, []string{"orientation", "target", "outcome"}),
		statuses: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_by_status",
			Help:      "Orders and requests currently in each status.",
		}, []string{"entity", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transitions,
		m.statuses,
	)

	return m
}

// ObserveTransition counts one transition attempt. Targets that are not
// request statuses share one label value.
func (m *Metrics) ObserveTransition(orientation workflow.Orientation, target string, kind errs.Kind) {
	if _, err := workflow.ParseRequestStatus(target); err != nil {
		target = unknownTarget
	}

	outcome := outcomeOK
	if kind != "" {
		outcome = string(kind)
	}

	m.transitions.WithLabelValues(orientation.String(), target, outcome).Inc()
}

// SetStatusCounts replaces every gauge of entity with counts. Statuses missing
// from counts disappear from the output.
func (m *Metrics) SetStatusCounts(entity string, counts map[string]int64) {
	m.statuses.DeletePartialMatch(prometheus.Labels{"entity": entity})
	for status, n := range counts {
		m.statuses.WithLabelValues(entity, status).Set(float64(n))
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
