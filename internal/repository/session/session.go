// Package session хранит незавершенные диалоги в памяти процесса.
// Сессии не переживают рестарт: незаконченный заказ начинается заново.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"orderbot/internal/entities"
	"orderbot/internal/service/order"
)

type Repository struct {
	mu       sync.Mutex
	sessions map[int64]entities.Session
}

func New() *Repository {
	return &Repository{
		sessions: make(map[int64]entities.Session),
	}
}

func (r *Repository) Get(_ context.Context, chatID int64) (*entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[chatID]
	if !ok {
		return nil, fmt.Errorf("%w: chat %d", order.ErrSessionNotFound, chatID)
	}
	clone := session.Clone()
	return &clone, nil
}

func (r *Repository) Save(_ context.Context, session entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ChatID] = session.Clone()
	ActiveSessions.Set(float64(len(r.sessions)))
	return nil
}

func (r *Repository) Delete(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, chatID)
	ActiveSessions.Set(float64(len(r.sessions)))
	return nil
}

// DeleteExpired удаляет сессии без активности дольше idleTTL относительно now.
func (r *Repository) DeleteExpired(_ context.Context, now time.Time, idleTTL time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	threshold := now.Add(-idleTTL)
	removed := 0
	for chatID, session := range r.sessions {
		if session.UpdatedAt.Before(threshold) {
			delete(r.sessions, chatID)
			removed++
		}
	}

	ActiveSessions.Set(float64(len(r.sessions)))
	return removed, nil
}
