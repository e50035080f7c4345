package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ratebank"

const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the service counters on its own registry. All methods are no-ops on a
// nil *Metrics so optional wiring needs no checks at call sites.
type Metrics struct {
	registry *prometheus.Registry

	lookups         *prometheus.CounterVec
	exchanges       *prometheus.CounterVec
	fallbackFetches *prometheus.CounterVec
	refreshRuns     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_lookups_total",
			Help:      "Rate lookups by operation and the source that answered them.",
		}, []string{"op", "source"}),
		exchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exchanges_total",
			Help:      "Money conversions by result.",
		}, []string{"result"}),
		fallbackFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_fetches_total",
			Help:      "Rate table fetches from the fallback provider by result.",
		}, []string{"result"}),
		refreshRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_runs_total",
			Help:      "Scheduled rate table refreshes by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.lookups,
		m.exchanges,
		m.fallbackFetches,
		m.refreshRuns,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveLookup(op, source string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(op, source).Inc()
}

func (m *Metrics) ObserveExchange(result string) {
	if m == nil {
		return
	}
	m.exchanges.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveFallbackFetch(err error) {
	if m == nil {
		return
	}
	m.fallbackFetches.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) ObserveRefresh(err error) {
	if m == nil {
		return
	}
	m.refreshRuns.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
