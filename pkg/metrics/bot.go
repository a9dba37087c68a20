package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ConversationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partsbot",
			Subsystem: "bot",
			Name:      "transitions_total",
			Help:      "Conversation state transitions by from/to status",
		},
		[]string{"from", "to"},
	)

	ConversationEscalations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "partsbot",
			Subsystem: "bot",
			Name:      "escalations_total",
			Help:      "Conversations handed off to a human",
		},
	)

	DuplicateJobsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "partsbot",
			Subsystem: "bot",
			Name:      "duplicate_jobs_skipped_total",
			Help:      "Inbound jobs short-circuited by the idempotency check",
		},
	)

	OfferFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "partsbot",
			Subsystem: "bot",
			Name:      "offer_fetch_failures_total",
			Help:      "Offer sourcing calls that failed after all retries",
		},
	)
)

func init() {
	Registry.MustRegister(
		ConversationTransitions,
		ConversationEscalations,
		DuplicateJobsSkipped,
		OfferFetchFailures,
	)
}
