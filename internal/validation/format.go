package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipcodeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\- ]{2,9}$`)
)

func isValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func isValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func isValidZipcode(s string) bool {
	return zipcodeRegex.MatchString(s)
}

// isValidPassword enforces the password rule: minimum length plus at least
// one lowercase letter, one uppercase letter, one digit and one special
// character. Expressed as character scans because RE2 has no lookaheads.
func isValidPassword(s string) bool {
	if len(s) < PasswordMinLength {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~", r):
			special = true
		}
	}
	return lower && upper && digit && special
}
