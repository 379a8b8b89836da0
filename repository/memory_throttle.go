package repository

import (
	"context"
	"sync"
	"time"
)

// MemoryThrottle keeps the throttle window per key in process memory.
type MemoryThrottle struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

func NewMemoryThrottle() *MemoryThrottle {
	return &MemoryThrottle{
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (m *MemoryThrottle) Allow(_ context.Context, key string, window time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, until := range m.until {
		if !now.Before(until) {
			delete(m.until, k)
		}
	}
	if _, ok := m.until[key]; ok {
		return false, nil
	}
	m.until[key] = now.Add(window)
	return true, nil
}

func (m *MemoryThrottle) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.until, key)
	return nil
}

