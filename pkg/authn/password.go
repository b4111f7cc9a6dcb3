package authn

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 10

	// bcrypt silently truncates beyond 72 bytes; reject instead.
	maxPasswordLength = 72
)

// ErrInvalidCredentials is returned when an email has no matching account or
// the password does not match the stored hash. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is compared against when no account matches the email, so the
// lookup-miss path costs the same as a real comparison.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(password) > maxPasswordLength {
		return "", errors.New("password exceeds maximum length")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a password against a stored bcrypt hash.
// The comparison is constant-time. Returns ErrInvalidCredentials on mismatch.
func VerifyPassword(storedHash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// BurnComparison performs a bcrypt comparison against a throwaway hash.
// Called on the account-not-found path of login to keep its timing in line
// with the password-mismatch path.
func BurnComparison(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
