package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignInsTotal counts login submissions by outcome:
	// "success", "invalid", "rejected" or "error".
	SignInsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodmingle_sign_ins_total",
		Help: "Login form submissions by outcome.",
	}, []string{"outcome"})

	SignOutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moodmingle_sign_outs_total",
		Help: "Completed sign-outs.",
	})

	GuardRedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodmingle_guard_redirects_total",
		Help: "Navigations short-circuited by a route guard.",
	}, []string{"guard"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moodmingle_http_request_duration_seconds",
		Help:    "Time from request receipt to response.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route", "method", "status"})
)
