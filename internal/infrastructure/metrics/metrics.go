package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersPerformed counts completed transfer attempts by final status.
	TransfersPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gotransfer_transfers_total",
			Help: "Total number of transfer attempts by outcome status",
		},
		[]string{"status"},
	)

	// TransferDuration observes end-to-end transfer duration, retries included.
	TransferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gotransfer_transfer_duration_seconds",
		Help:    "Duration of transfer operations",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .25, .5, 1, 2.5},
	})

	// BusyRetries counts transfer attempts that were retried after a busy status.
	BusyRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gotransfer_transfer_busy_retries_total",
		Help: "Total number of retries caused by account lock contention",
	})

	// AggregationDuration observes total-balance aggregation queries.
	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gotransfer_aggregation_duration_seconds",
		Help:    "Duration of total balance aggregation queries",
		Buckets: prometheus.DefBuckets,
	})
)
