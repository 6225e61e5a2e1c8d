package auth

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/sitepress/sitepress-backend/models"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores the bytes past 72
	MaxPasswordLength = 72
)

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.Wrapf(models.BadParameterError, "password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return errors.Wrapf(models.BadParameterError, "password must be at most %d bytes long", MaxPasswordLength)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "could not hash password")
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash. Users created
// through an identity provider have no hash and never match.
func CheckPassword(hash *string, password string) bool {
	if hash == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)) == nil
}
