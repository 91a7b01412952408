package sheets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheets_gateway_retries_total",
			Help: "Total number of Google Sheets calls that needed a retry",
		},
		[]string{"method", "status"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sheets_gateway_request_duration_seconds",
			Help:    "Duration of Google Sheets calls including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "status"},
	)
)
