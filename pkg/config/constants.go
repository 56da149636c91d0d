package config

// EnvPrefix is applied by envconfig when processing the environment.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "SHIFTSORTED_APP_ENV"
	EnvPort       = "SHIFTSORTED_APP_PORT"
	EnvDBDSN      = "SHIFTSORTED_DB_DSN"
	EnvDBHost     = "SHIFTSORTED_DB_HOST"
	EnvDBUser     = "SHIFTSORTED_DB_USER"
	EnvDBName     = "SHIFTSORTED_DB_NAME"
	EnvRedisURL   = "SHIFTSORTED_REDIS_URL"
	EnvJWTSecret  = "SHIFTSORTED_JWT_SECRET"
	EnvJWTIssuer  = "SHIFTSORTED_JWT_ISSUER"
	EnvJWTExpMins = "SHIFTSORTED_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
