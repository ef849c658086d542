package account

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRole           = errors.New("invalid role")
	ErrWeakPassword          = errors.New("password does not meet strength requirements")

	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrAccountNotFound    = errors.New("account not found")
)

// LockedError carries the lockout expiry so callers can report when login
// becomes possible again. errors.Is(err, ErrAccountLocked) matches it.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *LockedError) Is(target error) bool {
	return target == ErrAccountLocked
}
