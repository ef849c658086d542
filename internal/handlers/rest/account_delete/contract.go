//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_delete_test
package account_delete

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeactivateAccount(ctx context.Context, id int64) (bool, error)
}
