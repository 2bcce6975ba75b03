package security

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor for new password hashes unless
// configuration overrides it.
const DefaultBcryptCost = 12

var hashCost = DefaultBcryptCost

// DummyHash is a bcrypt hash of a random throwaway string. Login attempts
// against unknown emails are verified against it so the response time does
// not reveal whether the account exists.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// InitHashCost sets the bcrypt cost used by HashPassword. Called once at
// startup from configuration; out-of-range values fall back to the default.
func InitHashCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		hashCost = DefaultBcryptCost
		return
	}
	hashCost = cost
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
