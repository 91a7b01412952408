package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "conversation_sessions_active",
	Help: "Number of conversations currently kept in memory",
})
