package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"orderbot/internal/generated/dto"
	"orderbot/internal/pkg/middlewares/metrics"
	"orderbot/pkg/logger"
)

// Middleware общий лимит на весь HTTP сервер. Лимит на отдельный чат держит
// обработчик вебхука, здесь защищаемся от всплеска запросов целиком.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "rate limit exceeded, try again later"})
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("failed to write rate limit response")
			}
		})
	}
}
