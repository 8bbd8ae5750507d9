package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scoresComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_scores_computed_total",
			Help: "Total number of compatibility scores computed",
		},
		[]string{"mode"},
	)

	scoreFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_score_fallbacks_total",
			Help: "Scores served from the degraded fallback heuristic",
		},
	)

	scoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_score_distribution",
			Help:    "Distribution of overall compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	bestMatchQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_best_match_queries_total",
			Help: "Total number of best-match ranking queries",
		},
	)
)

func RecordScore(mode string, overall int) {
	scoresComputed.WithLabelValues(mode).Inc()
	scoreDistribution.Observe(float64(overall))
}

func RecordFallback() {
	scoreFallbacks.Inc()
}

func RecordBestMatchQuery() {
	bestMatchQueries.Inc()
}
