package session_cleanup

import "time"

func (s *SessionCleanup) SetClock(now func() time.Time) {
	s.now = now
}
