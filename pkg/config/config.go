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
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Pricing      PricingConfig
	Drafts       DraftsConfig
	Subscription SubscriptionConfig
	Square       SquareConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
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
	Env          string `envconfig:"SHIFTSORTED_APP_ENV" required:"true"`
	Port         string `envconfig:"SHIFTSORTED_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHIFTSORTED_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHIFTSORTED_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"SHIFTSORTED_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"SHIFTSORTED_DB_DSN"`
	Driver string `envconfig:"SHIFTSORTED_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHIFTSORTED_DB_HOST"`
	LegacyPort     int    `envconfig:"SHIFTSORTED_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHIFTSORTED_DB_USER"`
	LegacyPassword string `envconfig:"SHIFTSORTED_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHIFTSORTED_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHIFTSORTED_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHIFTSORTED_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHIFTSORTED_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHIFTSORTED_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHIFTSORTED_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHIFTSORTED_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SHIFTSORTED_REDIS_ADDR"`
	Password     string        `envconfig:"SHIFTSORTED_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHIFTSORTED_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHIFTSORTED_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHIFTSORTED_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHIFTSORTED_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHIFTSORTED_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHIFTSORTED_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"SHIFTSORTED_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"SHIFTSORTED_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"SHIFTSORTED_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"SHIFTSORTED_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHIFTSORTED_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHIFTSORTED_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHIFTSORTED_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHIFTSORTED_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHIFTSORTED_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SHIFTSORTED_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SHIFTSORTED_AUTO_MIGRATE" default:"false"`
}

// PricingConfig carries the pricing policy defaults. Each value is a
// documented fallback, not a law of physics: quote math reads these so a
// test can assert the fallback path distinctly from the normal path.
type PricingConfig struct {
	DepositPercentage       float64 `envconfig:"SHIFTSORTED_PRICING_DEPOSIT_PERCENTAGE" default:"10"`
	AdditionalSpaceVolumeM3 float64 `envconfig:"SHIFTSORTED_PRICING_ADDITIONAL_SPACE_VOLUME_M3" default:"200"`
	VanCapacityM3           float64 `envconfig:"SHIFTSORTED_PRICING_VAN_CAPACITY_M3" default:"18"`
	PackingRatePerM3        string  `envconfig:"SHIFTSORTED_PRICING_PACKING_RATE_PER_M3" default:"50"`
	DismantlingRatePerM3    string  `envconfig:"SHIFTSORTED_PRICING_DISMANTLING_RATE_PER_M3" default:"20"`
	ReassemblyRatePerM3     string  `envconfig:"SHIFTSORTED_PRICING_REASSEMBLY_RATE_PER_M3" default:"25"`
}

type SubscriptionConfig struct {
	MonthlyAmount string `envconfig:"SHIFTSORTED_SUBSCRIPTION_MONTHLY_AMOUNT" default:"49.99"`
	TrialDays     int    `envconfig:"SHIFTSORTED_SUBSCRIPTION_TRIAL_DAYS" default:"14"`
}

type DraftsConfig struct {
	TTL time.Duration `envconfig:"SHIFTSORTED_DRAFTS_TTL" default:"168h"`
}

type SquareConfig struct {
	AccessToken   string `envconfig:"SHIFTSORTED_SQUARE_ACCESS_TOKEN"`
	WebhookSecret string `envconfig:"SHIFTSORTED_SQUARE_WEBHOOK_SECRET"`
	Env           string `envconfig:"SHIFTSORTED_SQUARE_ENV" default:"sandbox"`
	LocationID    string `envconfig:"SHIFTSORTED_SQUARE_LOCATION_ID"`
	CurrencyCode  string `envconfig:"SHIFTSORTED_SQUARE_CURRENCY" default:"GBP"`
}

// Environment returns the normalized Square environment (sandbox/production).
func (s SquareConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "sandbox"
	}
	return env
}

type GCPConfig struct {
	ProjectID              string `envconfig:"SHIFTSORTED_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"SHIFTSORTED_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"SHIFTSORTED_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	DomainTopic        string `envconfig:"SHIFTSORTED_PUBSUB_DOMAIN_TOPIC" default:"ss-domain-events"`
	DomainSubscription string `envconfig:"SHIFTSORTED_PUBSUB_DOMAIN_SUBSCRIPTION"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"SHIFTSORTED_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"SHIFTSORTED_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"SHIFTSORTED_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
