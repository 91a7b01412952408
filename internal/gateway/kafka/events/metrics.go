package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Total number of events sent to Kafka",
	},
	[]string{"topic", "outcome"},
)
