package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/app/session"
	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/common/security"
)

// SessionManager issues opaque tokens on login and maps them back to user
// identities until they expire or are destroyed.
type SessionManager struct {
	store session.Store
	ttl   time.Duration
}

func NewSessionManager(store session.Store, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, ttl: ttl}
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

func (m *SessionManager) Create(ctx context.Context, userID string) (string, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return "", err
	}
	if err := m.store.Put(ctx, token, userID, m.ttl); err != nil {
		return "", fmt.Errorf("failed to record session: %w", err)
	}
	return token, nil
}

// Resolve returns the user ID behind token, or common.ErrUnauthenticated
// when the token is absent or expired.
func (m *SessionManager) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrUnauthenticated
	}
	userID, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return "", common.ErrUnauthenticated
		}
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

// Destroy is idempotent: destroying an absent token succeeds.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Del(ctx, token)
}
