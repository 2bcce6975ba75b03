package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process token map. It backs tests and
// single-process deployments that run without redis. Expired entries are
// rejected on read and evicted by the sweep loop.
type MemoryStore struct {
	mu            sync.RWMutex
	entries       map[string]memoryEntry
	sweepInterval time.Duration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:       make(map[string]memoryEntry),
		sweepInterval: time.Minute,
	}
}

func (s *MemoryStore) Put(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[token]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", ErrNoSession
	}
	return entry.userID, nil
}

func (s *MemoryStore) Del(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Run sweeps expired entries until ctx is cancelled. Intended to be
// started as a goroutine at process startup.
func (s *MemoryStore) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, token)
		}
	}
}
