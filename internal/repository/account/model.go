package account

import "time"

type AccountDB struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   string
	Role           string
	Active         bool
	FailedAttempts int
	LockedUntil    *time.Time
	CreatedAt      time.Time
}

type AccountModifyDB struct {
	ID           *int64
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
	Active       *bool
}
