// Package metrics exposes service metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seomarket"

const (
	ResultGranted = "granted"
	ResultDenied  = "denied"
)

// Metrics holds every collector of the service. It implements
// commands.TransitionObserver and the observer interfaces of the HTTP adapter
// and the outbox relay job.
type Metrics struct {
	transitions     *prometheus.CounterVec
	outboxPublished prometheus.Counter
	outboxFailures  prometheus.Counter
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Order status change requests by role, source, target and decision.",
		}, []string{"role", "from", "to", "result"}),
		outboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Outbox messages published to the broker.",
		}),
		outboxFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "relay_failures_total",
			Help:      "Outbox relay runs that failed.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{
		m.transitions, m.outboxPublished, m.outboxFailures, m.requests, m.latency,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) ObserveTransition(r role.Role, from, to order.Status, granted bool) {
	result := ResultDenied
	if granted {
		result = ResultGranted
	}
	m.transitions.WithLabelValues(r.String(), from.String(), to.String(), result).Inc()
}

func (m *Metrics) ObserveOutboxRelay(published int, err error) {
	m.outboxPublished.Add(float64(published))
	if err != nil {
		m.outboxFailures.Inc()
	}
}

// ObserveHTTPRequest records one request. route is the route template, not the
// raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
