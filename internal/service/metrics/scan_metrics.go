package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	drepo "OracleScan/internal/domain/repository"
)

var (
	once sync.Once

	scanLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "oraclescan",
			Subsystem: "scan",
			Name:      "latency_seconds",
			Help:      "Latency of full scan requests",
			Buckets:   prometheus.DefBuckets,
		},
	)

	scanAssets = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "oraclescan",
			Subsystem: "scan",
			Name:      "assets_per_request",
			Help:      "Number of assets scored per scan",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 10, 12},
		},
	)

	scanErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oraclescan",
			Subsystem: "scan",
			Name:      "errors_total",
			Help:      "Request-level scan failures by kind",
		},
		[]string{"kind"},
	)

	chartErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oraclescan",
			Subsystem: "scan",
			Name:      "chart_errors_total",
			Help:      "Per-asset chart fetch failures",
		},
		[]string{"symbol"},
	)

	lastScore = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "oraclescan",
			Subsystem: "scan",
			Name:      "last_score",
			Help:      "Last composite score per symbol",
		},
		[]string{"symbol"},
	)
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct{}

// New returns a scan metrics recorder, registering collectors once.
func New() *Recorder {
	once.Do(func() {
		prometheus.MustRegister(scanLatency, scanAssets, scanErrors, chartErrors, lastScore)
	})
	return &Recorder{}
}

func (r *Recorder) RecordScan(seconds float64, assets int) {
	scanLatency.Observe(seconds)
	scanAssets.Observe(float64(assets))
}

func (r *Recorder) RecordScanError(kind string) {
	scanErrors.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordChartError(symbol string) {
	chartErrors.WithLabelValues(symbol).Inc()
}

func (r *Recorder) RecordScore(symbol string, score int) {
	lastScore.WithLabelValues(symbol).Set(float64(score))
}

var _ drepo.Metrics = (*Recorder)(nil)
