// Package session holds the server-side mapping from opaque tokens to
// user identities. The Store is injected rather than ambient so tests and
// deployments can pick the backing (redis or in-process memory).
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned by Get when the token is absent or expired.
var ErrNoSession = errors.New("session not found")

type Store interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	// Del is idempotent: deleting an absent token is not an error.
	Del(ctx context.Context, token string) error
}
