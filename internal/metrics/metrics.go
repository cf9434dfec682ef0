// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "barbershop",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BookingOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barbershop",
			Name:      "booking_outcomes_total",
			Help:      "Appointment write attempts by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	SlotsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "barbershop",
			Name:      "availability_slots_returned",
			Help:      "Number of free slots returned per availability query.",
			Buckets:   []float64{0, 1, 2, 4, 8, 12, 16, 20},
		},
	)
)

// Outcome classifies an error for the outcome label.
func Outcome(err error) string {
	var (
		ve httperr.ValidationError
		ce httperr.ConflictError
		ne httperr.NotFoundError
		fe httperr.ForbiddenError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &ce):
		return "conflict"
	case errors.As(err, &ne):
		return "not_found"
	case errors.As(err, &fe):
		return "forbidden"
	default:
		return "error"
	}
}

func ObserveBooking(operation string, err error) {
	BookingOutcomes.WithLabelValues(operation, Outcome(err)).Inc()
}
