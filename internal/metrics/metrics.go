package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Users
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total successful registrations",
		},
	)
	RegistrationsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_rejected_total",
			Help: "Registrations rejected for a duplicate username or email",
		},
	)
	LoginsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_failed_total",
			Help: "Total failed login attempts",
		},
	)

	// Calculations
	CalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_total",
			Help: "Total stored calculations",
		},
		[]string{"operation", "action"}, // action: create|update
	)
	CalculationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_rejected_total",
			Help: "Calculations rejected by the evaluator",
		},
		[]string{"reason"}, // division_by_zero|invalid_operation
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			UsersRegistered,
			RegistrationsRejected,
			LoginsFailed,
			CalculationsTotal,
			CalculationsRejected,
		)
	})
}
