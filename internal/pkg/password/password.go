package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

// DefaultCost keeps login latency in the tens of milliseconds while
// staying expensive enough to brute-force.
const DefaultCost = bcrypt.DefaultCost

// HashPassword bcrypt-hashes a plaintext password for storage. Length
// and strength rules live in the user value objects; an empty string is
// rejected here only as a last line of defence.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// ComparePassword checks a plaintext password against a stored hash,
// returning ErrComparisonFailed on mismatch.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
