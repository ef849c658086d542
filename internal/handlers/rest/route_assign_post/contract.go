//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_assign_post_test
package route_assign_post

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
	AssignDriver(ctx context.Context, caller entities.Caller, routeID, newDriverID int64) (*entities.Route, error)
}
