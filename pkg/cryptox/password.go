package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to new password hashes.
// Raising it only affects hashes created after the change; existing hashes
// keep the cost they were created with and still verify.
const PasswordCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not correspond to the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword derives a salted bcrypt hash from a plaintext password.
// bcrypt generates a fresh random salt per call, so hashing the same
// password twice yields different strings. Empty passwords are accepted;
// rejecting them is a policy decision left to the caller.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash
// using bcrypt's own comparison primitive. It never reconstructs and
// compares raw hashes itself.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("invalid password hash: %w", err)
}
