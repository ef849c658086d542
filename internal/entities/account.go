package entities

import (
	"time"
)

type Account struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   string
	Role           RoleType
	Active         bool
	FailedAttempts int
	LockedUntil    *time.Time
	CreatedAt      time.Time
}

type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleManager RoleType = "manager"
	RoleDriver  RoleType = "driver"
)

const DefaultRole = RoleDriver

func (r RoleType) String() string {
	return string(r)
}

type AccountModify struct {
	ID           *int64
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *RoleType
	Active       *bool
}

// IsLocked reports whether the account is under a lockout window at the given moment.
func (a *Account) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	AccountID int64
	Username  string
	Email     string
	Role      RoleType
}
