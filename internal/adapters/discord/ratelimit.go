package discord

import (
	"sync"
	"time"
)

type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

// Allow consume el cupo de key. Si no hay, devuelve cuánto falta.
func (l *userLimiter) Allow(key string) (bool, time.Duration) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[key]; ok && now.Before(until) {
		return false, until.Sub(now)
	}
	l.next[key] = now.Add(l.win)

	// limpieza de vencidos para que el mapa no crezca sin techo
	if len(l.next) > 1024 {
		for k, until := range l.next {
			if !now.Before(until) {
				delete(l.next, k)
			}
		}
	}
	return true, 0
}
