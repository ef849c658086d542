//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	routeGateway "dispatch/internal/gateway/http/route"
	"dispatch/internal/gateway/kafka/parcel_status"
	"dispatch/internal/handlers/kafka-consumer/parcel_status_changed"
	"dispatch/internal/handlers/tasks/lockout_release"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/kafka"
	accountRepo "dispatch/internal/repository/account"
	parcelRepo "dispatch/internal/repository/parcel"
	routeRepo "dispatch/internal/repository/route"
	accountService "dispatch/internal/service/account"
	parcelService "dispatch/internal/service/parcel"
	routeService "dispatch/internal/service/route"
	"dispatch/pkg/hasher/bcrypt_adapter"
	"dispatch/pkg/logger"
	"dispatch/pkg/token"
	"dispatch/pkg/tx"
)

// InitializeAuthApplication wires cmd/auth-service.
func InitializeAuthApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*AuthApplication, error) {
	wire.Build(
		provideQuerier,
		provideTokenIssuer,
		provideHasher,
		provideAccountRepository,
		provideServiceAccount,

		provideLockoutReleaseInterval,
		provideLockoutReleaseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(AuthApplication), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.Hasher), new(*bcrypt_adapter.Hasher)),
		wire.Bind(new(accountService.TokenIssuer), new(*token.Issuer)),
		wire.Bind(new(lockout_release.Service), new(*accountService.Account)),
	)
	return &AuthApplication{}, nil
}

// InitializeRouteApplication wires cmd/route-service.
func InitializeRouteApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*RouteApplication, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTokenIssuer,
		provideRouteRepository,
		provideServiceRoute,

		wire.Struct(new(RouteApplication), "*"),

		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
	)
	return &RouteApplication{}, nil
}

// InitializeParcelApplication wires cmd/parcel-service. The Kafka producer is
// owned by main and passed in.
func InitializeParcelApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*ParcelApplication, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTokenIssuer,
		provideParcelRepository,
		provideGatewayHTTPClient,
		provideRouteGateway,
		provideStatusPublisher,
		provideServiceParcel,

		wire.Struct(new(ParcelApplication), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.RouteGateway), new(*routeGateway.RouteGateway)),
		wire.Bind(new(parcelService.EventPublisher), new(*parcel_status.Publisher)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
	)
	return &ParcelApplication{}, nil
}

// InitializeWorkerApplication wires cmd/worker-parcel-status-changed.
func InitializeWorkerApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*WorkerApplication, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideParcelRepository,
		provideGatewayHTTPClient,
		provideRouteGateway,
		provideStatusPublisher,
		provideServiceParcel,

		wire.Struct(new(WorkerApplication), "*"),

		wire.Bind(new(parcel_status_changed.Service), new(*parcelService.Parcel)),
		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.RouteGateway), new(*routeGateway.RouteGateway)),
		wire.Bind(new(parcelService.EventPublisher), new(*parcel_status.Publisher)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
	)
	return &WorkerApplication{}, nil
}
