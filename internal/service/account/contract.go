//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error)
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
	Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, page entities.PageRequest) ([]entities.Account, int64, error)

	RecordFailure(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error
	RecordSuccess(ctx context.Context, id int64) error
	ReleaseExpiredLockouts(ctx context.Context) (int64, error)
}

type Hasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type TokenIssuer interface {
	Issue(accountID int64, username, email, role string) (token string, expiresAt time.Time, err error)
}
