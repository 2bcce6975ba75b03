package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordUsesDefaultCost(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("failed to read cost from hash: %v", err)
	}
	if cost != DefaultBcryptCost {
		t.Fatalf("expected cost %d, got %d", DefaultBcryptCost, cost)
	}
}

func TestInitHashCostIsApplied(t *testing.T) {
	defer InitHashCost(DefaultBcryptCost)

	InitHashCost(bcrypt.MinCost)

	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("failed to read cost from hash: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost, cost)
	}
}

func TestInitHashCostRejectsOutOfRange(t *testing.T) {
	defer InitHashCost(DefaultBcryptCost)

	InitHashCost(bcrypt.MaxCost + 1)

	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("failed to read cost from hash: %v", err)
	}
	if cost != DefaultBcryptCost {
		t.Fatalf("expected fallback to cost %d, got %d", DefaultBcryptCost, cost)
	}
}

func TestCheckPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !CheckPasswordHash("pw1", hash) {
		t.Fatalf("expected the original password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected a wrong password to fail verification")
	}
}
