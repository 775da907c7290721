package validators

import (
	"errors"
	"unicode"
)

var (
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordNeedsDigit = errors.New("password must contain at least one digit")
	ErrPasswordNeedsLower = errors.New("password must contain at least one lowercase letter")
)

// ValidatePassword applies the account password policy: minimum 6
// characters, at least one digit and one lowercase letter. Uppercase and
// symbols are not required.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	var hasDigit, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	if !hasDigit {
		return ErrPasswordNeedsDigit
	}
	if !hasLower {
		return ErrPasswordNeedsLower
	}
	return nil
}
