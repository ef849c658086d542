package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

const (
	lockoutThreshold = 5
	lockoutWindow    = 15 * time.Minute
)

type Account struct {
	repository Repository
	hasher     Hasher
	issuer     TokenIssuer
}

func New(repository Repository, hasher Hasher, issuer TokenIssuer) *Account {
	return &Account{
		repository: repository,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Register creates an active account after uniqueness and password-strength
// checks. The returned view never carries the password hash outward; the
// handler layer strips it.
func (s *Account) Register(ctx context.Context, username, email, password string, role entities.RoleType) (*entities.Account, error) {
	if username == "" || email == "" || password == "" || role == "" {
		return nil, ErrMissingRequiredFields
	}

	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidRole(role.String()) {
		return nil, ErrInvalidRole
	}
	if !isStrongPassword(password) {
		return nil, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	active := true
	accountModify := entities.AccountModify{
		Username:     &username,
		Email:        &email,
		PasswordHash: &hash,
		Role:         &role,
		Active:       &active,
	}

	created, err := s.repository.Create(ctx, accountModify)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return created, nil
}

// Login verifies credentials and issues a session token. The lockout window
// is checked before the password is compared; the failure counter mutation
// persists even though the login itself fails.
func (s *Account) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	acc, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	now := time.Now().UTC()
	if acc.IsLocked(now) {
		return nil, &LockedError{Until: *acc.LockedUntil}
	}

	if !acc.Active {
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Matches(acc.PasswordHash, password) {
		attempts := acc.FailedAttempts + 1
		var lockedUntil *time.Time
		if attempts >= lockoutThreshold {
			until := now.Add(lockoutWindow)
			lockedUntil = &until
		}
		if err := s.repository.RecordFailure(ctx, acc.ID, attempts, lockedUntil); err != nil {
			return nil, fmt.Errorf("record failed attempt: %w", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.repository.RecordSuccess(ctx, acc.ID); err != nil {
		return nil, fmt.Errorf("reset failed attempts: %w", err)
	}

	signed, expiresAt, err := s.issuer.Issue(acc.ID, acc.Username, acc.Email, acc.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		AccountID: acc.ID,
		Username:  acc.Username,
		Email:     acc.Email,
		Role:      acc.Role,
	}, nil
}

// UpdateAccount applies a partial patch. Only role and active flag are
// patchable; identity fields are immutable after registration.
func (s *Account) UpdateAccount(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error) {
	if accountModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if accountModify.Role == nil && accountModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if accountModify.Role != nil && !isValidRole(accountModify.Role.String()) {
		return nil, ErrInvalidRole
	}

	patch := entities.AccountModify{
		ID:     accountModify.ID,
		Role:   accountModify.Role,
		Active: accountModify.Active,
	}

	updated, err := s.repository.Update(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return updated, nil
}

// DeactivateAccount flips the active flag off, keeping the row. An unknown id
// yields false rather than an error; accounts back historical audit data and
// are never hard-deleted.
func (s *Account) DeactivateAccount(ctx context.Context, id int64) (bool, error) {
	deactivated, err := s.repository.Deactivate(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deactivate account: %w", err)
	}
	return deactivated, nil
}

func (s *Account) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	acc, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

func (s *Account) GetAccounts(ctx context.Context, page entities.PageRequest) (*entities.Page[entities.Account], error) {
	page = page.Normalized()

	accounts, total, err := s.repository.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	result := entities.NewPage(accounts, page, total)
	return &result, nil
}

// ReleaseExpiredLockouts clears failure counters on rows whose lockout window
// has passed. Login treats an expired lockout as unlocked on its own; this is
// periodic hygiene so stale counters do not linger.
func (s *Account) ReleaseExpiredLockouts(ctx context.Context) (int64, error) {
	released, err := s.repository.ReleaseExpiredLockouts(ctx)
	if err != nil {
		return 0, fmt.Errorf("release expired lockouts: %w", err)
	}
	return released, nil
}
