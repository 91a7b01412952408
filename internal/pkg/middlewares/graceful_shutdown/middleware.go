package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"orderbot/internal/generated/dto"
)

const retryAfterSeconds = "5"

// Middleware отбивает новые запросы, когда остановка уже началась и ongoingCtx отменен.
// Telegram повторит отклоненный апдейт на другой инстанс.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() && ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", retryAfterSeconds)
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "service is shutting down"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
