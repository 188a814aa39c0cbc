package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "tradebot"

type Metrics struct {
	ProposalsCreated    *prometheus.CounterVec
	InboundDecisions    *prometheus.CounterVec
	Confirmations       *prometheus.CounterVec
	LedgerNotifications *prometheus.CounterVec
	OfferEvents         *prometheus.CounterVec
	SessionConnected    prometheus.Gauge
}

// NewMetrics registers the coordinator's collectors on reg. A nil reg gets
// a private registry, which keeps tests free of global state.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		ProposalsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "proposals_created_total",
			Help:      "Outbound trade proposals sent, by direction.",
		}, []string{"direction"}),
		InboundDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "inbound_decisions_total",
			Help:      "Inbound proposal decisions, by outcome.",
		}, []string{"decision"}),
		Confirmations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "confirmations_total",
			Help:      "Mobile confirmation attempts, by result.",
		}, []string{"result"}),
		LedgerNotifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_notifications_total",
			Help:      "Status notifications pushed to the ledger, by result.",
		}, []string{"result"}),
		OfferEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "offer_events_total",
			Help:      "Offer events dispatched, by kind.",
		}, []string{"kind"}),
		SessionConnected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "session_connected",
			Help:      "1 while the platform web session is usable.",
		}),
	}
}
