package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/app/service"
	"github.com/mrunankdekhane/task-manager/internal/app/session"
	"github.com/mrunankdekhane/task-manager/internal/common"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	manager := service.NewSessionManager(session.NewMemoryStore(), time.Hour)

	token, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a non-empty token")
	}

	userID, err := manager.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	t.Parallel()

	manager := service.NewSessionManager(session.NewMemoryStore(), time.Hour)

	a, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	b, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct tokens for successive sessions")
	}
}

func TestResolveAfterDestroy(t *testing.T) {
	t.Parallel()

	manager := service.NewSessionManager(session.NewMemoryStore(), time.Hour)

	token, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := manager.Destroy(context.Background(), token); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}

	if _, err := manager.Resolve(context.Background(), token); !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after destroy, got %v", err)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	t.Parallel()

	manager := service.NewSessionManager(session.NewMemoryStore(), time.Hour)

	if err := manager.Destroy(context.Background(), "never-issued"); err != nil {
		t.Fatalf("expected destroying an absent token to succeed, got %v", err)
	}

	token, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := manager.Destroy(context.Background(), token); err != nil {
			t.Fatalf("Destroy attempt %d returned error: %v", i+1, err)
		}
	}
}

func TestResolveExpiredSession(t *testing.T) {
	t.Parallel()

	// A negative TTL produces an already-expired session.
	manager := service.NewSessionManager(session.NewMemoryStore(), -time.Second)

	token, err := manager.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := manager.Resolve(context.Background(), token); !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired session, got %v", err)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	t.Parallel()

	manager := service.NewSessionManager(session.NewMemoryStore(), time.Hour)

	if _, err := manager.Resolve(context.Background(), ""); !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for empty token, got %v", err)
	}
}
