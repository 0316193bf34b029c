// Package metrics exposes the storefront's Prometheus collectors. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "lumina"

// Metrics groups the storefront collectors.
type Metrics struct {
	ordersCompleted prometheus.Counter
	orderRevenue    prometheus.Counter
	paymentAttempts *prometheus.CounterVec
	semanticSearch  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ordersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_completed_total",
			Help:      "Orders recorded after a successful payment.",
		}),
		orderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_revenue_total",
			Help:      "Sum of recorded order totals.",
		}),
		paymentAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_attempts_total",
			Help:      "Payment attempts by provider and outcome.",
		}, []string{"provider", "outcome"}),
		semanticSearch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "semantic_search_total",
			Help:      "Semantic search calls by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.ordersCompleted, m.orderRevenue, m.paymentAttempts, m.semanticSearch} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveOrder counts a recorded order and its total.
func (m *Metrics) ObserveOrder(total decimal.Decimal) {
	if m == nil {
		return
	}
	m.ordersCompleted.Inc()
	f, _ := total.Float64()
	m.orderRevenue.Add(f)
}

// ObservePayment counts a payment attempt outcome.
func (m *Metrics) ObservePayment(provider, outcome string) {
	if m == nil {
		return
	}
	m.paymentAttempts.WithLabelValues(provider, outcome).Inc()
}

// ObserveSearch counts a semantic search outcome: hit, empty or error.
func (m *Metrics) ObserveSearch(outcome string) {
	if m == nil {
		return
	}
	m.semanticSearch.WithLabelValues(outcome).Inc()
}
