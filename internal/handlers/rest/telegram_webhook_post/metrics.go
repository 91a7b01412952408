package telegram_webhook_post

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ChatRateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "telegram_chat_rate_limited_total",
		Help: "Total number of telegram updates dropped by the per-chat rate limiter",
	},
	[]string{"update"},
)
