package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"orderbot/internal/pkg/middlewares/metrics"
)

var RequestTimeoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_request_timeouts_total",
		Help: "Total number of HTTP requests that ran out of their deadline",
	},
	[]string{"route"},
)

// Middleware ограничивает время обработки запроса, включая походы в таблицы и Telegram.
// Ответ пишет сам обработчик, здесь только считаем запросы, упершиеся в дедлайн.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				RequestTimeoutsTotal.WithLabelValues(metrics.RouteTemplate(r)).Inc()
			}
		})
	}
}
