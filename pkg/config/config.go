package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	PaymentLink  PaymentLinkConfig
	Forex        ForexConfig
	Locker       LockerConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HYPERSWITCH_APP_ENV" required:"true"`
	Port         string `envconfig:"HYPERSWITCH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HYPERSWITCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HYPERSWITCH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"HYPERSWITCH_DB_DSN"`
	Driver string `envconfig:"HYPERSWITCH_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"HYPERSWITCH_DB_HOST"`
	Port     int    `envconfig:"HYPERSWITCH_DB_PORT" default:"5432"`
	User     string `envconfig:"HYPERSWITCH_DB_USER"`
	Password string `envconfig:"HYPERSWITCH_DB_PASSWORD"`
	Name     string `envconfig:"HYPERSWITCH_DB_NAME"`
	SSLMode  string `envconfig:"HYPERSWITCH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HYPERSWITCH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HYPERSWITCH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HYPERSWITCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HYPERSWITCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HYPERSWITCH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"HYPERSWITCH_REDIS_ADDR"`
	Password     string        `envconfig:"HYPERSWITCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"HYPERSWITCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HYPERSWITCH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HYPERSWITCH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HYPERSWITCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HYPERSWITCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HYPERSWITCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PaymentLinkConfig carries the hosted-checkout renderer settings.
type PaymentLinkConfig struct {
	SDKURL        string `envconfig:"HYPERSWITCH_PAYMENT_LINK_SDK_URL" default:"https://checkout.hyperswitch.io/v0/HyperLoader.js"`
	DefaultDomain string `envconfig:"HYPERSWITCH_PAYMENT_LINK_DEFAULT_DOMAIN" default:"https://checkout.hyperswitch.io"`
}

// ForexConfig gates calls to the external exchange-rate source.
type ForexConfig struct {
	APIURL               string        `envconfig:"HYPERSWITCH_FOREX_API_URL"`
	APIKey               string        `envconfig:"HYPERSWITCH_FOREX_API_KEY"`
	CallDelay            time.Duration `envconfig:"HYPERSWITCH_FOREX_CALL_DELAY" default:"21600s"`
	LocalFetchRetryDelay time.Duration `envconfig:"HYPERSWITCH_FOREX_RETRY_DELAY" default:"1s"`
	LocalFetchRetryCount int           `envconfig:"HYPERSWITCH_FOREX_RETRY_COUNT" default:"5"`
}

// LockerConfig points at the card-vault service probed during readiness checks.
type LockerConfig struct {
	Host       string `envconfig:"HYPERSWITCH_LOCKER_HOST"`
	MockLocker bool   `envconfig:"HYPERSWITCH_MOCK_LOCKER" default:"true"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"HYPERSWITCH_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	LinkEventsTopic string `envconfig:"HYPERSWITCH_PUBSUB_LINK_EVENTS_TOPIC" default:"hs-link-events"`
}

type FeatureFlagsConfig struct {
	AutoMigrate   bool `envconfig:"HYPERSWITCH_AUTO_MIGRATE" default:"false"`
	PublishEvents bool `envconfig:"HYPERSWITCH_PUBLISH_LINK_EVENTS" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
