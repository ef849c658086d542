//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_get_test
package parcels_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/parcel"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SearchParcels(ctx context.Context, filter parcel.Filter, page entities.PageRequest) (*entities.Page[entities.Parcel], error)
}
