//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routes_get_test
package routes_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/route"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetRoutes(ctx context.Context, caller entities.Caller, filter route.Filter, page entities.PageRequest) (*entities.Page[entities.Route], error)
}
