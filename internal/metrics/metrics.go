package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_messages_received_total",
			Help: "Inbound channel messages accepted by the intake normalizer",
		},
		[]string{"type"},
	)

	CommandsIntercepted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_commands_intercepted_total",
			Help: "Opt-in/opt-out commands intercepted during intake",
		},
		[]string{"command"},
	)

	AdvisorDegraded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_degraded_total",
			Help: "Advisories that fell back to the safe default",
		},
	)

	ModerationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_decisions_total",
			Help: "Auto-moderation gate outcomes",
		},
		[]string{"decision"},
	)

	BroadcastSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_sends_total",
			Help: "Per-recipient send attempts by outcome",
		},
		[]string{"outcome"},
	)

	BroadcastsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcasts_completed_total",
			Help: "Dispatch runs that reached the completed status",
		},
	)
)

// Init registers metrics with Prometheus
func Init() {
	prometheus.MustRegister(MessagesReceived)
	prometheus.MustRegister(CommandsIntercepted)
	prometheus.MustRegister(AdvisorDegraded)
	prometheus.MustRegister(ModerationDecisions)
	prometheus.MustRegister(BroadcastSends)
	prometheus.MustRegister(BroadcastsCompleted)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
