// internal/quiz/metrics.go

package quiz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_submissions_total",
		Help: "Total quiz submissions accepted",
	})

	validationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_validation_failures_total",
		Help: "Total quiz submissions rejected by validation",
	}, []string{"field"})
)

func recordSubmission() {
	submissionsTotal.Inc()
}

func recordValidationFailure(field string) {
	validationFailuresTotal.WithLabelValues(field).Inc()
}
