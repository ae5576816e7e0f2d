package config

const (
	EnvPrefix = "HYPERSWITCH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "HYPERSWITCH_DB_DSN"
	EnvDBHost = "HYPERSWITCH_DB_HOST"
	EnvDBUser = "HYPERSWITCH_DB_USER"
	EnvDBName = "HYPERSWITCH_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
