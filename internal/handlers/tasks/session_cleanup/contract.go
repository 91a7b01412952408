//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_cleanup_test
package session_cleanup

import (
	"context"
	"time"
)

type SessionRepository interface {
	DeleteExpired(ctx context.Context, now time.Time, idleTTL time.Duration) (int, error)
}

type ChatLimiter interface {
	Evict(idle time.Duration) int
}
