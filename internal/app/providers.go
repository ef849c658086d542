package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	routeGateway "dispatch/internal/gateway/http/route"
	"dispatch/internal/gateway/kafka/parcel_status"
	"dispatch/internal/handlers/tasks/lockout_release"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/kafka"
	accountRepo "dispatch/internal/repository/account"
	parcelRepo "dispatch/internal/repository/parcel"
	routeRepo "dispatch/internal/repository/route"
	accountService "dispatch/internal/service/account"
	parcelService "dispatch/internal/service/parcel"
	routeService "dispatch/internal/service/route"
	"dispatch/pkg/background"
	"dispatch/pkg/hasher/bcrypt_adapter"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/token"
	"dispatch/pkg/tx"
)

type LockoutReleaseInterval time.Duration

const gatewayClientTimeout = 10 * time.Second

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenIssuer(cfg *config.Config) (*token.Issuer, error) {
	return token.NewIssuer(token.Config{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.JWTIssuer,
		Audience: cfg.Auth.JWTAudience,
	})
}

func provideHasher(cfg *config.Config) *bcrypt_adapter.Hasher {
	return bcrypt_adapter.New(cfg.Auth.BcryptCost)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideServiceAccount(
	repository accountService.Repository,
	hasher accountService.Hasher,
	issuer accountService.TokenIssuer,
) *accountService.Account {
	return accountService.New(repository, hasher, issuer)
}

func provideServiceRoute(
	repository routeService.Repository,
	txManager routeService.TxManager,
) *routeService.Route {
	return routeService.New(repository, txManager)
}

func provideServiceParcel(
	repository parcelService.Repository,
	gateway parcelService.RouteGateway,
	publisher parcelService.EventPublisher,
	txManager parcelService.TxManager,
	cfg *config.Config,
) *parcelService.Parcel {
	return parcelService.New(repository, gateway, publisher, txManager, cfg.Parcel.ValidateRouteOnCreate)
}

func provideGatewayHTTPClient() *http.Client {
	return &http.Client{Timeout: gatewayClientTimeout}
}

func provideRouteGateway(client *http.Client, cfg *config.Config) *routeGateway.RouteGateway {
	return routeGateway.New(client, cfg.RouteService.BaseURL, cfg.RouteService.Token)
}

func provideStatusPublisher(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *parcel_status.Publisher {
	return parcel_status.New(log, producer, cfg.Kafka.Topic)
}

func provideLockoutReleaseInterval(cfg *config.Config) LockoutReleaseInterval {
	return LockoutReleaseInterval(cfg.Tasks.LockoutReleaseInterval)
}

func provideLockoutReleaseTask(
	log logger.Logger,
	accountService lockout_release.Service,
	interval LockoutReleaseInterval,
) *lockout_release.LockoutRelease {
	return lockout_release.NewLockoutRelease(log, accountService, time.Duration(interval))
}

func provideTaskList(
	lockoutReleaseTask *lockout_release.LockoutRelease,
) []background.Task {
	return []background.Task{
		lockoutReleaseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
