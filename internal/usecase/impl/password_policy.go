package impl

import (
	"strings"

	domainerrors "crm/internal/domain/errors"
)

const minPasswordLength = 8

// validatePassword checks the password policy: at least eight characters with
// an upper case letter, a lower case letter, a digit and a symbol. All
// violations are collected so the caller sees every failing rule at once.
func validatePassword(password string) error {
	var violations []string

	if len(password) < minPasswordLength {
		violations = append(violations, "must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case isPasswordSymbol(r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		violations = append(violations, "must contain an upper case letter")
	}
	if !hasLower {
		violations = append(violations, "must contain a lower case letter")
	}
	if !hasDigit {
		violations = append(violations, "must contain a digit")
	}
	if !hasSymbol {
		violations = append(violations, "must contain a symbol")
	}

	if len(violations) > 0 {
		return domainerrors.ErrPasswordInvalid.WithDetails(strings.Join(violations, "; "))
	}

	return nil
}

// isPasswordSymbol reports whether r is in the printable ASCII symbol ranges.
func isPasswordSymbol(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	default:
		return false
	}
}
