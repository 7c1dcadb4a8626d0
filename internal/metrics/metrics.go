package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chatform"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Form metrics
var (
	FieldValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_validations_total",
			Help:      "Total number of single-field validations triggered by change events",
		},
		[]string{"field", "result"}, // result: "valid" or "invalid"
	)

	FormSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Total number of registration form submissions",
		},
		[]string{"outcome"}, // "invalid" or "submitted"
	)

	FieldErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submit_field_errors_total",
			Help:      "Field errors reported by rejected submissions",
		},
		[]string{"field"},
	)
)

// ObserveFieldValidation records one change-event validation.
func ObserveFieldValidation(field, message string) {
	result := "valid"
	if message != "" {
		result = "invalid"
	}
	FieldValidationsTotal.WithLabelValues(field, result).Inc()
}

// ObserveSubmission records a submit outcome and the fields that failed it.
func ObserveSubmission(outcome string, failedFields []string) {
	FormSubmissionsTotal.WithLabelValues(outcome).Inc()
	for _, f := range failedFields {
		FieldErrorsTotal.WithLabelValues(f).Inc()
	}
}
