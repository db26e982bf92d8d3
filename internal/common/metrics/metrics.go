package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "activities_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_signups_total",
			Help: "Total number of signup attempts by outcome",
		},
		[]string{"activity", "outcome"},
	)

	UnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_unregisters_total",
			Help: "Total number of unregister attempts by outcome",
		},
		[]string{"activity", "outcome"},
	)

	RosterSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activities_roster_size",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)
