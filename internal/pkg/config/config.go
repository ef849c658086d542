package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		LockoutReleaseInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		JWTSecret   string
		JWTIssuer   string
		JWTAudience string
		BcryptCost  int
	}

	RouteService struct {
		BaseURL string
		// Token is the service credential the parcel service presents to the
		// route service.
		Token string
	}

	Parcel struct {
		ValidateRouteOnCreate bool
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ParcelStatusChanged ParcelStatusChanged
	}

	ParcelStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Auth         Auth
		RouteService RouteService
		Parcel       Parcel
		Kafka        Kafka
	}
)

// Load reads the environment without validating. Each binary validates only
// the sections it actually uses.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	lockoutReleaseInterval, err := osGetEnvDuration("BACKGROUND_LOCKOUT_RELEASE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	parcelStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bcryptCost, err := osGetInt("AUTH_BCRYPT_COST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	validateRouteOnCreate := true
	if raw := os.Getenv("PARCEL_VALIDATE_ROUTE_ON_CREATE"); raw != "" {
		validateRouteOnCreate, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("loading config: invalid bool format for PARCEL_VALIDATE_ROUTE_ON_CREATE=%q: %w", raw, err)
		}
	}

	return &Config{
		Tasks: Tasks{
			LockoutReleaseInterval: lockoutReleaseInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer:   os.Getenv("AUTH_JWT_ISSUER"),
			JWTAudience: os.Getenv("AUTH_JWT_AUDIENCE"),
			BcryptCost:  bcryptCost,
		},
		RouteService: RouteService{
			BaseURL: os.Getenv("ROUTE_SERVICE_BASE_URL"),
			Token:   os.Getenv("ROUTE_SERVICE_TOKEN"),
		},
		Parcel: Parcel{
			ValidateRouteOnCreate: validateRouteOnCreate,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ParcelStatusChanged: ParcelStatusChanged{
					ProcessTimeout: parcelStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func (cfg *Config) ValidateAuthService() error {
	if err := cfg.validateServer(); err != nil {
		return err
	}
	if err := cfg.validateDatabase(); err != nil {
		return err
	}
	if err := cfg.validateAuth(); err != nil {
		return err
	}
	if cfg.Tasks.LockoutReleaseInterval == time.Duration(0) {
		return errors.New("BACKGROUND_LOCKOUT_RELEASE_INTERVAL is required")
	}
	return nil
}

func (cfg *Config) ValidateRouteService() error {
	if err := cfg.validateServer(); err != nil {
		return err
	}
	if err := cfg.validateDatabase(); err != nil {
		return err
	}
	return cfg.validateAuth()
}

func (cfg *Config) ValidateParcelService() error {
	if err := cfg.validateServer(); err != nil {
		return err
	}
	if err := cfg.validateDatabase(); err != nil {
		return err
	}
	if err := cfg.validateAuth(); err != nil {
		return err
	}
	if cfg.RouteService.BaseURL == "" {
		return errors.New("ROUTE_SERVICE_BASE_URL is required")
	}
	return cfg.validateKafkaCommon()
}

func (cfg *Config) ValidateWorker() error {
	if err := cfg.validateDatabase(); err != nil {
		return err
	}
	if err := cfg.validateKafkaCommon(); err != nil {
		return err
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.ParcelStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PARCEL_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func (cfg *Config) validateServer() error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	return nil
}

func (cfg *Config) validateDatabase() error {
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func (cfg *Config) validateAuth() error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.JWTIssuer == "" {
		return errors.New("AUTH_JWT_ISSUER is required")
	}
	if cfg.Auth.JWTAudience == "" {
		return errors.New("AUTH_JWT_AUDIENCE is required")
	}
	return nil
}

func (cfg *Config) validateKafkaCommon() error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
