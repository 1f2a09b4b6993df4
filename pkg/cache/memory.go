package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	value   string
	expires time.Time
}

// sweepInterval bounds how often SetNX scans for expired entries.
const sweepInterval = time.Minute

// Memory is a process-local Cache, used when no Redis address is configured.
type Memory struct {
	mu        sync.Mutex
	entries   map[string]entry
	prefix    string
	now       func() time.Time
	lastSweep time.Time
}

// NewMemory returns an empty Memory cache namespaced with serviceName.
func NewMemory(serviceName string) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		prefix:  serviceName,
		now:     time.Now,
	}
}

func (m *Memory) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	if _, ok := m.lookup(key); ok {
		return false, nil
	}
	m.entries[key] = entry{value: value, expires: m.now().Add(ttl)}
	return true, nil
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return "", ErrMiss
	}
	return e.value, nil
}

func (m *Memory) Key(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", m.prefix, operation, key)
}

func (m *Memory) lookup(key string) (entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return entry{}, false
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, key)
		return entry{}, false
	}
	return e, true
}

// sweep drops expired entries, at most once per sweepInterval.
func (m *Memory) sweep() {
	now := m.now()
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	for k, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, k)
		}
	}
}
