package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsCurrentBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "current_block",
		Help:      "Next block height to be scanned",
	}, []string{"processor"})

	metricsLatestBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "latest_block",
		Help:      "Latest finalized block height of the chain",
	}, []string{"processor"})

	metricsState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "state",
		Help:      "Current scanner state (0=connecting, 1=scanning, 2=waiting, 3=recovering, 4=stopped)",
	}, []string{"processor"})

	metricsBlocksPerSecond = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "blocks_per_second",
		Help:      "Scan rate since the scanner started",
	}, []string{"processor"})

	metricsProgress = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "progress_ratio",
		Help:      "Ratio of scanned blocks between the start block and the latest block",
	}, []string{"processor"})

	metricsETA = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "eta_seconds",
		Help:      "Estimated time to reach the latest block",
	}, []string{"processor"})

	metricsBlocksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "blocks_processed_total",
		Help:      "Total blocks scanned",
	}, []string{"processor"})

	metricsErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "errors_total",
		Help:      "Total scan cycle errors that triggered a reconnect",
	}, []string{"processor"})

	metricsBatchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dot721",
		Subsystem: "scanner",
		Name:      "batch_duration_seconds",
		Help:      "Duration of fetching and processing a batch of blocks",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"processor"})
)
