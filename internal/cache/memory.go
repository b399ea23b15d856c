package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	data   []byte
	expiry time.Time
}

// Memory é o store padrão: um mapa com TTL, sem persistência entre
// sessões e sem eviction além da expiração e da invalidação por prefixo.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if m.now().After(e.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}

	return e.data, true
}

func (m *Memory) Set(_ context.Context, key string, data []byte, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry{
		data:   data,
		expiry: m.now().Add(ttl),
	}
	m.mu.Unlock()
}

func (m *Memory) DeletePrefix(_ context.Context, prefix string) {
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}

var _ Store = (*Memory)(nil)
