package order

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ConversationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "conversation_actions_total",
		Help: "Total number of handled conversation actions",
	},
	[]string{"action", "outcome"},
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrSessionNotFound):
		return "no_session"
	case errors.Is(err, ErrStaleAction):
		return "stale"
	default:
		return "error"
	}
}
