package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	csvUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kco_finops",
		Name:      "csv_uploads_total",
		Help:      "Number of CSV upload requests, partitioned by outcome.",
	}, []string{"status"})

	rowsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kco_finops",
		Name:      "rows_processed_total",
		Help:      "Total billing rows processed across all uploads.",
	})

	reportDownloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kco_finops",
		Name:      "report_downloads_total",
		Help:      "Number of executive PDF reports generated.",
	})

	uploadsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "kco_finops",
		Name:      "csv_uploads_in_flight",
		Help:      "Uploads currently being processed.",
	})

	csvProcessingSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "kco_finops",
		Name:      "csv_processing_seconds",
		Help:      "Time spent parsing and aggregating an uploaded CSV.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)
