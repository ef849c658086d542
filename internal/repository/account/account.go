package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/account"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usernameConstraint = "accounts_username_key"
	emailConstraint    = "accounts_email_key"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)
	query := `INSERT INTO accounts (username, email, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password_hash, role, active, failed_attempts, locked_until, created_at`

	var accountModel AccountDB
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModifyModel.Username,
		accountModifyModel.Email,
		accountModifyModel.PasswordHash,
		accountModifyModel.Role,
		accountModifyModel.Active,
	).Scan(
		&accountModel.ID,
		&accountModel.Username,
		&accountModel.Email,
		&accountModel.PasswordHash,
		&accountModel.Role,
		&accountModel.Active,
		&accountModel.FailedAttempts,
		&accountModel.LockedUntil,
		&accountModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			if repository.PgConstraintName(err) == emailConstraint {
				return nil, account.ErrDuplicateEmail
			}
			return nil, account.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `SELECT id, username, email, password_hash, role, active, failed_attempts, locked_until, created_at
		FROM accounts
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	query := `SELECT id, username, email, password_hash, role, active, failed_attempts, locked_until, created_at
		FROM accounts
		WHERE username = $1`

	return r.getOne(ctx, query, username)
}

func (r *Repository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	builder := qb.
		Update("accounts")

	if accountModifyModel.Role != nil {
		builder = builder.Set("role", accountModifyModel.Role)
	}
	if accountModifyModel.Active != nil {
		builder = builder.Set("active", accountModifyModel.Active)
	}

	builder = builder.
		Where(sq.Eq{"id": accountModifyModel.ID}).
		Suffix("RETURNING id, username, email, password_hash, role, active, failed_attempts, locked_until, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	var accountModel AccountDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.Active,
			&accountModel.FailedAttempts,
			&accountModel.LockedUntil,
			&accountModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	return ToDomain(&accountModel), nil
}

// Deactivate soft-deletes: the row survives with active=false. Unknown ids
// report false, not an error.
func (r *Repository) Deactivate(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE accounts SET active = FALSE WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected account repository deactivate error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) List(ctx context.Context, page entities.PageRequest) ([]entities.Account, int64, error) {
	var total int64
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected account repository list error: %w", err)
	}

	query := `SELECT id, username, email, password_hash, role, active, failed_attempts, locked_until, created_at
		FROM accounts
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := r.querier.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected account repository list error: %w", err)
	}
	defer rows.Close()

	accountModels := make([]AccountDB, 0, page.Size)
	for rows.Next() {
		var accountModel AccountDB
		err := rows.Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.Active,
			&accountModel.FailedAttempts,
			&accountModel.LockedUntil,
			&accountModel.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected account repository list error: %w", err)
		}
		accountModels = append(accountModels, accountModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected account repository list error: %w", err)
	}

	return ToDomainList(accountModels), total, nil
}

func (r *Repository) RecordFailure(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error {
	query := `UPDATE accounts SET failed_attempts = $2, locked_until = $3 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, attempts, lockedUntil)
	if err != nil {
		return fmt.Errorf("unexpected account repository record failure error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) RecordSuccess(ctx context.Context, id int64) error {
	query := `UPDATE accounts SET failed_attempts = 0, locked_until = NULL WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected account repository record success error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) ReleaseExpiredLockouts(ctx context.Context) (int64, error) {
	query := `UPDATE accounts
		SET failed_attempts = 0, locked_until = NULL
		WHERE locked_until IS NOT NULL AND locked_until <= NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected account repository release lockouts error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Account, error) {
	var accountModel AccountDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&accountModel.ID,
			&accountModel.Username,
			&accountModel.Email,
			&accountModel.PasswordHash,
			&accountModel.Role,
			&accountModel.Active,
			&accountModel.FailedAttempts,
			&accountModel.LockedUntil,
			&accountModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository get error: %w", err)
	}

	return ToDomain(&accountModel), nil
}
