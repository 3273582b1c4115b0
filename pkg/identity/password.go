package identity

import (
	"errors"

	"github.com/taskboard/taskboard/pkg/taskboard"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// HashPassword returns the bcrypt hash stored for a new account.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", taskboard.NewErrInvalid("password", "must be at least 6 characters")
	}
	if len(password) > MaxPasswordLength {
		return "", taskboard.NewErrInvalid("password", "must be at most 72 bytes")
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// ComparePassword returns taskboard.ErrInvalidCredentials unless password
// matches hash.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrHashTooShort):
		return taskboard.ErrInvalidCredentials
	default:
		return err
	}
}
