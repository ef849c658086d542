//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=accounts_get_test
package accounts_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetAccounts(ctx context.Context, page entities.PageRequest) (*entities.Page[entities.Account], error)
}
