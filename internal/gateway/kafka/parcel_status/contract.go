//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_status_test
package parcel_status

import (
	"dispatch/pkg/logger"
)

type sender interface {
	Send(topic string, key, value []byte) error
}

type publisherLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
