package account

import (
	"dispatch/internal/entities"
)

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}

	return &entities.Account{
		ID:             a.ID,
		Username:       a.Username,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		Role:           entities.RoleType(a.Role),
		Active:         a.Active,
		FailedAttempts: a.FailedAttempts,
		LockedUntil:    a.LockedUntil,
		CreatedAt:      a.CreatedAt,
	}
}

func FromDomainModify(accountModify *entities.AccountModify) *AccountModifyDB {
	if accountModify == nil {
		return nil
	}
	accountDB := &AccountModifyDB{}

	if accountModify.ID != nil {
		accountDB.ID = accountModify.ID
	}
	if accountModify.Username != nil {
		accountDB.Username = accountModify.Username
	}
	if accountModify.Email != nil {
		accountDB.Email = accountModify.Email
	}
	if accountModify.PasswordHash != nil {
		accountDB.PasswordHash = accountModify.PasswordHash
	}
	if accountModify.Role != nil {
		role := accountModify.Role.String()
		accountDB.Role = &role
	}
	if accountModify.Active != nil {
		accountDB.Active = accountModify.Active
	}

	return accountDB
}

func ToDomainList(accountsDB []AccountDB) []entities.Account {
	if len(accountsDB) == 0 {
		return []entities.Account{}
	}

	result := make([]entities.Account, len(accountsDB))
	for i, accountDB := range accountsDB {
		result[i] = *ToDomain(&accountDB)
	}
	return result
}
