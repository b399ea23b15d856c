package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok := m.Get(ctx, "GET /api/services/"); ok {
		t.Fatal("empty cache must miss")
	}

	m.Set(ctx, "GET /api/services/", []byte(`[]`), time.Minute)

	data, ok := m.Get(ctx, "GET /api/services/")
	if !ok || string(data) != `[]` {
		t.Fatalf("expected hit, got ok=%v data=%s", ok, data)
	}
}

func TestMemoryEntriesExpire(t *testing.T) {
	ctx := context.Background()

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	m.Set(ctx, "GET /api/appointments/", []byte(`[]`), time.Minute)

	now = now.Add(59 * time.Second)
	if _, ok := m.Get(ctx, "GET /api/appointments/"); !ok {
		t.Fatal("entry expired early")
	}

	now = now.Add(2 * time.Second)
	if _, ok := m.Get(ctx, "GET /api/appointments/"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestMemoryDeletePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "GET /api/appointments/", []byte(`[]`), time.Minute)
	m.Set(ctx, "GET /api/appointments/?status=confirmed", []byte(`[]`), time.Minute)
	m.Set(ctx, "GET /api/services/", []byte(`[]`), time.Minute)

	m.DeletePrefix(ctx, "GET /api/appointments")

	if _, ok := m.Get(ctx, "GET /api/appointments/"); ok {
		t.Fatal("prefixed entry must be invalidated")
	}
	if _, ok := m.Get(ctx, "GET /api/appointments/?status=confirmed"); ok {
		t.Fatal("prefixed entry with query must be invalidated")
	}
	if _, ok := m.Get(ctx, "GET /api/services/"); !ok {
		t.Fatal("unrelated entry must survive")
	}
}
