package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Booking lifecycle metrics
	BookingsCreated  *prometheus.CounterVec
	BookingsCanceled prometheus.Counter
	BookingsReviewed prometheus.Counter

	// Credit ledger metrics
	CreditsGranted prometheus.Counter
	CreditsDebited prometheus.Counter

	// Sales metrics
	SalesRecorded prometheus.Counter
	SalesRevenue  prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		BookingsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings created",
		}, []string{"funding"}),
		BookingsCanceled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_canceled_total",
			Help:      "Total number of bookings canceled",
		}),
		BookingsReviewed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_reviewed_total",
			Help:      "Total number of completed bookings that received a review",
		}),
		CreditsGranted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_granted_total",
			Help:      "Total session credits granted through package purchases",
		}),
		CreditsDebited: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_debited_total",
			Help:      "Total session credits redeemed for bookings",
		}),
		SalesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_recorded_total",
			Help:      "Total number of sales recorded",
		}),
		SalesRevenue: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_revenue_total",
			Help:      "Accumulated sale amounts in currency units",
		}),
	}
}
