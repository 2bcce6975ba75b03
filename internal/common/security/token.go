package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewSessionToken returns an unguessable opaque token. It carries no
// payload; it is only ever used as a lookup key in the session store.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
