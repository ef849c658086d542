package lockout_release

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ReleaseExpiredLockouts(ctx context.Context) (int64, error)
}

// LockoutRelease periodically clears login failure counters whose lockout
// window has passed.
type LockoutRelease struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLockoutRelease(log logger.Logger, service Service, interval time.Duration) *LockoutRelease {
	return &LockoutRelease{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LockoutRelease) TTL() time.Duration {
	return l.interval
}

func (l *LockoutRelease) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	rowsAffected, err := l.service.ReleaseExpiredLockouts(ctxWithTimeout)

	if rowsAffected > 0 {
		l.log.With(
			logger.NewField("released_accounts", rowsAffected),
		).Info("lockout release")
	}

	return err
}

func (l *LockoutRelease) Info() string {
	return "lockout release"
}
