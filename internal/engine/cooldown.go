package engine

import (
	"context"
	"sync"
	"time"
)

// CooldownStore помнит время последнего входа по символу. Память по
// умолчанию, Postgres-реализация живёт в engine/pg и переживает рестарт.
type CooldownStore interface {
	Record(ctx context.Context, symbol string, at time.Time) error
	Active(ctx context.Context, symbol string, now time.Time) (bool, error)
}

type MemoryCooldown struct {
	mu     sync.Mutex
	last   map[string]time.Time
	window time.Duration
}

func NewMemoryCooldown(window time.Duration) *MemoryCooldown {
	return &MemoryCooldown{last: make(map[string]time.Time), window: window}
}

func (m *MemoryCooldown) Record(_ context.Context, symbol string, at time.Time) error {
	m.mu.Lock()
	m.last[symbol] = at
	m.mu.Unlock()
	return nil
}

func (m *MemoryCooldown) Active(_ context.Context, symbol string, now time.Time) (bool, error) {
	m.mu.Lock()
	at, ok := m.last[symbol]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return now.Sub(at) < m.window, nil
}
