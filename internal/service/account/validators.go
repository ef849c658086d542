package account

import (
	"strings"
	"unicode"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 8
)

const passwordSpecialSet = "!@#$%^&*()-_=+[]{};:,.<>?"

func isValidUsername(username string) bool {
	username = strings.TrimSpace(username)
	return len(username) >= usernameMinLen && len(username) <= usernameMaxLen
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

// isStrongPassword enforces the registration policy: at least eight
// characters with an uppercase letter, a lowercase letter, a digit and one
// character from the special set.
func isStrongPassword(password string) bool {
	if len(password) < passwordMinLen {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialSet, char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

func isValidRole(role string) bool {
	switch role {
	case "admin", "manager", "driver":
		return true
	default:
		return false
	}
}
