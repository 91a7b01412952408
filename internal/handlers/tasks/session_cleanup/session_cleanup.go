package session_cleanup

import (
	"context"
	"fmt"
	"time"

	"orderbot/pkg/logger"
)

type SessionCleanup struct {
	log      logger.Logger
	sessions SessionRepository
	limiter  ChatLimiter
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time
}

func NewSessionCleanup(
	log logger.Logger,
	sessions SessionRepository,
	limiter ChatLimiter,
	interval time.Duration,
	idleTTL time.Duration,
) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		sessions: sessions,
		limiter:  limiter,
		interval: interval,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

// Do удаляет брошенные диалоги и лимитеры чатов, простаивающих дольше idleTTL.
func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	deleted, err := s.sessions.DeleteExpired(ctxWithTimeout, s.now(), s.idleTTL)
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}

	evicted := s.limiter.Evict(s.idleTTL)

	if deleted > 0 || evicted > 0 {
		s.log.With(
			logger.NewField("expired_sessions", deleted),
			logger.NewField("evicted_limiters", evicted),
		).Info("session cleanup")
	}

	return nil
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}
