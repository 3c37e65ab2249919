package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the ingestion path.
var (
	DonationsSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "donations_saved_total",
			Help: "Number of donations written to the ledger",
		},
	)

	DonationsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donations_rejected_total",
			Help: "Number of donation submissions rejected before storage",
		},
		[]string{"reason"},
	)

	DonationsAmountCents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "donations_amount_cents_total",
			Help: "Cumulative donated amount accepted, in cents",
		},
	)

	DonationsDuplicateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "donations_duplicate_total",
			Help: "Number of repeat submissions of an already-recorded transaction",
		},
	)
)
