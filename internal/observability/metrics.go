package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "octofit"

// Metrics holds the Prometheus collectors exported on /metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	recomputeDuration    prometheus.Histogram
	recomputeFailures    prometheus.Counter
	recomputeLastSuccess prometheus.Gauge
	leaderboardRows      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		recomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "leaderboard_recompute_duration_seconds",
			Help:      "Duration of full leaderboard rebuilds",
			Buckets:   prometheus.DefBuckets,
		}),
		recomputeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_recompute_failures_total",
			Help:      "Leaderboard rebuilds that stopped on a store error",
		}),
		recomputeLastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_recompute_last_success_timestamp_seconds",
			Help:      "Unix time of the last completed leaderboard rebuild",
		}),
		leaderboardRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_rows",
			Help:      "Rows written by the last completed leaderboard rebuild",
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.recomputeDuration,
		m.recomputeFailures,
		m.recomputeLastSuccess,
		m.leaderboardRows,
	)
	return m
}

// ObserveRequest records one served HTTP request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(path, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

// ObserveRecompute records the outcome of a leaderboard rebuild
func (m *Metrics) ObserveRecompute(rows int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.recomputeDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.recomputeFailures.Inc()
		return
	}
	m.leaderboardRows.Set(float64(rows))
	m.recomputeLastSuccess.SetToCurrentTime()
}
