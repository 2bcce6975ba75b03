package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStorePutGet(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	if err := store.Put(context.Background(), "tok", "user-1", time.Hour); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	userID, err := store.Get(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestMemoryStoreExpiredEntryIsRejected(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	if err := store.Put(context.Background(), "tok", "user-1", -time.Second); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	if _, err := store.Get(context.Background(), "tok"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for expired entry, got %v", err)
	}
}

func TestMemoryStoreDelIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	if err := store.Del(context.Background(), "absent"); err != nil {
		t.Fatalf("expected Del on absent token to succeed, got %v", err)
	}

	if err := store.Put(context.Background(), "tok", "user-1", time.Hour); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Del(context.Background(), "tok"); err != nil {
			t.Fatalf("Del attempt %d returned error: %v", i+1, err)
		}
	}
	if _, err := store.Get(context.Background(), "tok"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after delete, got %v", err)
	}
}

func TestMemoryStoreSweepEvictsOnlyExpired(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	store.Put(context.Background(), "live", "user-1", time.Hour)
	store.Put(context.Background(), "dead", "user-2", -time.Second)

	store.sweep(time.Now())

	store.mu.RLock()
	defer store.mu.RUnlock()
	if _, ok := store.entries["live"]; !ok {
		t.Fatalf("expected live entry to survive the sweep")
	}
	if _, ok := store.entries["dead"]; ok {
		t.Fatalf("expected expired entry to be evicted")
	}
}
