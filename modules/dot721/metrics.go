package dot721

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsInscriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dot721",
		Subsystem: "indexer",
		Name:      "inscriptions_total",
		Help:      "Number of indexed inscriptions by operation, status and fail reason",
	}, []string{"op", "status", "fail_reason"})

	metricsInscriptionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dot721",
		Subsystem: "indexer",
		Name:      "inscription_errors_total",
		Help:      "Number of inscriptions skipped because of an unexpected error",
	}, []string{"op"})

	metricsMetadataLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dot721",
		Subsystem: "indexer",
		Name:      "metadata_fetch_seconds",
		Help:      "Latency of metadata resolution",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"kind", "result"})
)
